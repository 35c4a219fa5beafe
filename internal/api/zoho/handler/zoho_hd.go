package zohoHandler

import (
	"time"

	"BluewudSupport/internal/api/zoho"
	contextPkg "BluewudSupport/pkg/context"
	"BluewudSupport/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

// Webhook always answers 200 with a renderable reply. SalesIQ drops the
// conversation on non-2xx responses, so even a malformed payload gets the
// rephrase prompt instead of an error status.
func (h *ZohoHandler) Webhook(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 35*time.Second)
	defer cancel()

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing SalesIQ webhook")

	var req zoho.WebhookRequest
	if err := ctx.BodyParser(&req); err != nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("SalesIQ webhook body unparsable, treating as empty message")
		req = zoho.WebhookRequest{}
	}

	response := h.zohoService.HandleWebhook(c, req)

	return ctx.Status(fiber.StatusOK).JSON(response)
}
