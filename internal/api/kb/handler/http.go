package kbHandler

import (
	kbService "BluewudSupport/internal/api/kb/service"
	"BluewudSupport/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type KbHandler struct {
	log        *logrus.Logger
	middleware middleware.Middleware
	kbService  kbService.IKbService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	ks kbService.IKbService,
) *KbHandler {
	return &KbHandler{
		log:        log,
		middleware: middleware,
		kbService:  ks,
	}
}

func (h *KbHandler) Start(srv fiber.Router) {
	kbGroup := srv.Group("/kb")

	kbGroup.Post("/reload", h.middleware.NewTokenMiddleware, h.Reload)
	kbGroup.Get("/stats", h.Stats)
}
