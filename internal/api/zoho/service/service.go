package zohoService

import (
	chatService "BluewudSupport/internal/api/chat/service"
	"BluewudSupport/internal/api/zoho"
	"BluewudSupport/internal/knowledge"
	contextPkg "BluewudSupport/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IZohoService interface {
	HandleWebhook(ctx context.Context, req zoho.WebhookRequest) zoho.WebhookResponse
}

type zohoService struct {
	log         *logrus.Logger
	store       knowledge.IStore
	chatService chatService.IChatService
}

func New(log *logrus.Logger, store knowledge.IStore, cs chatService.IChatService) IZohoService {
	return &zohoService{
		log:         log,
		store:       store,
		chatService: cs,
	}
}

// HandleWebhook adapts a SalesIQ event onto the message pipeline. The
// trigger event fires when a visitor opens the chat window and gets the
// welcome message; everything else is treated as a visitor message.
func (s *zohoService) HandleWebhook(ctx context.Context, req zoho.WebhookRequest) zoho.WebhookResponse {
	requestID := contextPkg.GetRequestID(ctx)
	snap := s.store.Snapshot()

	if req.Handler == zoho.HandlerTrigger {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Info("Visitor opened chat, sending welcome message")
		return zoho.WebhookResponse{
			Replies: []zoho.Reply{{Text: snap.Messages.Welcome}},
		}
	}

	message := req.ExtractMessage()
	result := s.chatService.ProcessMessage(ctx, message)

	return zoho.WebhookResponse{
		Action:  result.Action,
		Replies: []zoho.Reply{{Text: result.Reply}},
	}
}
