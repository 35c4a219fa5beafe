package chatService

import (
	"BluewudSupport/internal/api/chat"
	"BluewudSupport/internal/knowledge"
	"BluewudSupport/pkg/gemini"
	redisPkg "BluewudSupport/pkg/redis"
	smtpPkg "BluewudSupport/pkg/smtp"
	"BluewudSupport/pkg/whatsapp"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IChatService interface {
	ProcessMessage(ctx context.Context, message string) *chat.MessageResponse
}

type chatService struct {
	log        *logrus.Logger
	store      knowledge.IStore
	gemini     gemini.IGemini
	replyCache redisPkg.IRedis
	whatsapp   whatsapp.IWhatsappSender
	mailer     smtpPkg.ItfSmtp
	intents    []intentRule
}

// New wires the message pipeline. Gemini, the reply cache and both handoff
// notifiers may be nil; the pipeline degrades to canned replies without them.
func New(
	log *logrus.Logger,
	store knowledge.IStore,
	geminiClient gemini.IGemini,
	replyCache redisPkg.IRedis,
	whatsappClient whatsapp.IWhatsappSender,
	mailer smtpPkg.ItfSmtp,
) IChatService {
	return &chatService{
		log:        log,
		store:      store,
		gemini:     geminiClient,
		replyCache: replyCache,
		whatsapp:   whatsappClient,
		mailer:     mailer,
		intents:    defaultIntentRules(),
	}
}
