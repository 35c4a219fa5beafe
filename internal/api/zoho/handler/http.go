package zohoHandler

import (
	zohoService "BluewudSupport/internal/api/zoho/service"
	"BluewudSupport/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ZohoHandler struct {
	log         *logrus.Logger
	middleware  middleware.Middleware
	zohoService zohoService.IZohoService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	zs zohoService.IZohoService,
) *ZohoHandler {
	return &ZohoHandler{
		log:         log,
		middleware:  middleware,
		zohoService: zs,
	}
}

func (h *ZohoHandler) Start(srv fiber.Router) {
	zohoGroup := srv.Group("/zoho")

	zohoGroup.Post("/webhook", h.Webhook)
}
