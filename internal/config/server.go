package config

import (
	"fmt"
	"os"

	"BluewudSupport/database/postgres"
	chatHandler "BluewudSupport/internal/api/chat/handler"
	chatService "BluewudSupport/internal/api/chat/service"
	kbHandler "BluewudSupport/internal/api/kb/handler"
	kbService "BluewudSupport/internal/api/kb/service"
	orderHandler "BluewudSupport/internal/api/order/handler"
	orderRepository "BluewudSupport/internal/api/order/repository"
	orderService "BluewudSupport/internal/api/order/service"
	zohoHandler "BluewudSupport/internal/api/zoho/handler"
	zohoService "BluewudSupport/internal/api/zoho/service"
	"BluewudSupport/internal/knowledge"
	"BluewudSupport/internal/middleware"
	"BluewudSupport/pkg/gemini"
	"BluewudSupport/pkg/openai"
	"BluewudSupport/pkg/redis"
	"BluewudSupport/pkg/s3"
	"BluewudSupport/pkg/smtp"
	"BluewudSupport/pkg/utils"
	"BluewudSupport/pkg/whatsapp"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine         *fiber.App
	db             *sqlx.DB
	log            *logrus.Logger
	middleware     middleware.Middleware
	validator      *validator.Validate
	utils          utils.IUtils
	handlers       []handler
	redisServer    redis.IRedis
	smtpMailer     smtp.ItfSmtp
	whatsappClient whatsapp.IWhatsappSender
	geminiClient   gemini.IGemini
	s3Client       s3.ItfS3
	knowledgeStore knowledge.IStore
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.knowledgeStore == nil {
		return nil, fmt.Errorf("knowledge store is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

// WithDatabase is best effort: the tracking service falls back to demo
// orders when no database is reachable, so a failed connection only logs.
func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Warnf("Database unavailable, order tracking will use demo data: %v", err)
			}
			return nil
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

// WithS3Client is optional: without it the knowledge base loads from the
// local file or the embedded dataset.
func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Warnf("S3 client unavailable, knowledge base will load locally: %v", err)
			}
			return nil
		}
		s.s3Client = client
		return nil
	}
}

// WithWhatsappClient is optional: handoff alerts fall back to email only.
func WithWhatsappClient() ServerOption {
	return func(s *Server) error {
		client, err := whatsapp.New()
		if err != nil {
			if s.log != nil {
				s.log.Warnf("WhatsApp client unavailable, handoff alerts go to email only: %v", err)
			}
			return nil
		}
		s.whatsappClient = client
		return nil
	}
}

// WithGeminiClient is optional: without a configured provider every
// open-ended question gets the offline message while intents and FAQ
// retrieval keep working. When Gemini is not configured the OpenAI
// provider is tried as a stand-in.
func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewGeminiClient(s.log)
		if err == nil {
			s.geminiClient = client
			return nil
		}
		if s.log != nil {
			s.log.Warnf("Gemini client unavailable: %v", err)
		}

		fallback, err := openai.NewChatClient(s.log)
		if err != nil {
			if s.log != nil {
				s.log.Warnf("No completion provider configured, assistant runs without completion fallback: %v", err)
			}
			return nil
		}
		s.geminiClient = fallback
		return nil
	}
}

func WithKnowledgeStore() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before the knowledge store")
		}
		store, err := knowledge.New(s.log, s.s3Client)
		if err != nil {
			return fmt.Errorf("failed to load knowledge base: %w", err)
		}
		s.knowledgeStore = store
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Chat Domain
	chatServices := chatService.New(s.log, s.knowledgeStore, s.geminiClient, s.redisServer, s.whatsappClient, s.smtpMailer)
	chatHandlers := chatHandler.New(s.log, s.validator, s.middleware, chatServices, s.knowledgeStore)

	// Zoho SalesIQ Webhook
	zohoServices := zohoService.New(s.log, s.knowledgeStore, chatServices)
	zohoHandlers := zohoHandler.New(s.log, s.middleware, zohoServices)

	// Order Tracking
	var orderRepo orderRepository.Repository
	if s.db != nil {
		orderRepo = orderRepository.New(s.db, s.log)
	}
	orderServices := orderService.New(s.log, orderRepo)
	orderHandlers := orderHandler.New(s.log, s.validator, s.middleware, orderServices)

	// Knowledge Base Admin
	kbServices := kbService.New(s.log, s.knowledgeStore)
	kbHandlers := kbHandler.New(s.log, s.middleware, kbServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, chatHandlers, zohoHandlers, orderHandlers, kbHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	router.Use(s.middleware.NewLoggingMiddleware)
	router.Use(s.middleware.NewRateLimiter)

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		if s.whatsappClient != nil {
			s.whatsappClient.Disconnect()
		}
		return err
	}

	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		snap := s.knowledgeStore.Snapshot()
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
			"kb": fiber.Map{
				"source": snap.Source,
				"faqs":   snap.TotalFaqs(),
			},
		})
	})
}
