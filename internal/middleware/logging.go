package middleware

import (
	"encoding/json"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type loggingMiddleware struct {
	logger *logrus.Logger
}

func newLoggingMiddleware(logger *logrus.Logger) *loggingMiddleware {
	return &loggingMiddleware{
		logger: logger,
	}
}

func (m *middleware) NewLoggingMiddleware(ctx *fiber.Ctx) error {
	start := time.Now()

	err := ctx.Next()

	latency := time.Since(start)
	status := ctx.Response().StatusCode()

	logFields := logrus.Fields{
		"request_id":    m.GetRequestID(ctx),
		"method":        ctx.Method(),
		"path":          ctx.Path(),
		"status":        status,
		"latency_ms":    latency.Milliseconds(),
		"ip":            ctx.IP(),
		"host":          ctx.Hostname(),
		"user_agent":    ctx.Get("User-Agent"),
		"response_size": len(ctx.Response().Body()),
	}

	if len(ctx.Request().Body()) > 0 {
		logFields["request_body"] = sanitizeRequestBody(string(ctx.Request().Body()))
	}

	entry := m.loggingMiddleware.logger.WithFields(logFields)
	switch {
	case status >= 500:
		entry.Error("Server error")
	case status >= 400:
		entry.Warn("Client error")
	default:
		entry.Info("Success")
	}

	return err
}

// sanitizeRequestBody redacts credentials and, unless DEBUG_LOGGING is set,
// the visitor's message text. Chat transcripts only hit the logs during
// explicit debugging sessions.
func sanitizeRequestBody(body string) string {
	var jsonBody map[string]interface{}
	if err := json.Unmarshal([]byte(body), &jsonBody); err != nil {
		return "[non-JSON body]"
	}

	sensitiveFields := []string{
		"password", "token", "secret", "key", "auth",
		"credential", "authorization", "pin",
	}

	if os.Getenv("DEBUG_LOGGING") != "true" {
		sensitiveFields = append(sensitiveFields, "message", "text", "payload")
	}

	for _, field := range sensitiveFields {
		if _, exists := jsonBody[field]; exists {
			jsonBody[field] = "[REDACTED]"
		}
	}

	sanitized, err := json.Marshal(jsonBody)
	if err != nil {
		return "[sanitization-failed]"
	}

	return string(sanitized)
}
