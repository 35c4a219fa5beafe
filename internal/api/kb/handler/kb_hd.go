package kbHandler

import (
	"time"

	contextPkg "BluewudSupport/pkg/context"
	"BluewudSupport/pkg/handlerUtil"
	"BluewudSupport/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *KbHandler) Reload(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Info("Processing knowledge base reload request")

	response, err := h.kbService.Reload(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "reload_knowledge_base")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

func (h *KbHandler) Stats(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	response, err := h.kbService.Stats(contextPkg.FromFiberCtx(ctx))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "knowledge_base_stats")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
}
