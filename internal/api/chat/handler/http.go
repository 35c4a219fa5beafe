package chatHandler

import (
	chatService "BluewudSupport/internal/api/chat/service"
	"BluewudSupport/internal/knowledge"
	"BluewudSupport/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type ChatHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	chatService chatService.IChatService
	store       knowledge.IStore
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs chatService.IChatService,
	store knowledge.IStore,
) *ChatHandler {
	return &ChatHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		chatService: cs,
		store:       store,
	}
}

func (h *ChatHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	chatGroup := srv.Group("/chat")

	chatGroup.Post("/messages", h.ProcessMessage)

	chatGroup.Use("/ws", wsMiddleware)
	chatGroup.Get("/ws", websocket.New(h.handleChatWebSocket))
}
