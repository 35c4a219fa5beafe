package chatHandler

import (
	"time"

	"BluewudSupport/internal/api/chat"
	contextPkg "BluewudSupport/pkg/context"
	"BluewudSupport/pkg/handlerUtil"
	"BluewudSupport/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

// The completion fallback may retry for a while, so the request budget sits
// above the worst-case retry window.
const processMessageTimeout = 35 * time.Second

func (h *ChatHandler) ProcessMessage(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), processMessageTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing chat message request")

	var req chat.ProcessMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, chat.ErrMissingMessage, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	response := h.chatService.ProcessMessage(c, req.Message)

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
}
