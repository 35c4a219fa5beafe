package chatService

import (
	"strings"
	"time"

	"BluewudSupport/internal/api/chat"
	contextPkg "BluewudSupport/pkg/context"
	"BluewudSupport/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	handoffAlertTimeout  = 30 * time.Second
	handoffAlertMaxRunes = 500
)

// ProcessMessage runs the full pipeline: intent short-circuit, knowledge
// retrieval, then the completion fallback. It never returns nil and never
// panics outward; any failure collapses into a canned reply.
func (s *chatService) ProcessMessage(ctx context.Context, message string) (resp *chat.MessageResponse) {
	requestID := contextPkg.GetRequestID(ctx)
	snap := s.store.Snapshot()

	defer func() {
		if r := recover(); r != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"panic":      r,
			}).Error("Message pipeline recovered from panic")
			resp = &chat.MessageResponse{
				Reply:    snap.Messages.SystemError,
				Category: chat.CategoryError,
			}
		}
	}()

	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return &chat.MessageResponse{
			Reply:    snap.Messages.Rephrase,
			Category: chat.CategoryError,
		}
	}

	if intent := s.findIntent(trimmed, snap.Messages); intent != nil {
		if intent.Action == chat.ActionHandoff {
			s.notifyHandoff(ctx, trimmed)
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"category":   intent.Category,
		}).Info("Intent matched")
		return intent
	}

	faqMatches := s.searchFaqs(snap, trimmed)
	productMatches := s.searchProducts(snap, trimmed)

	s.log.WithFields(logrus.Fields{
		"request_id":      requestID,
		"faq_matches":     len(faqMatches),
		"product_matches": len(productMatches),
	}).Debug("Knowledge retrieval complete")

	return s.generateReply(ctx, trimmed, snap, faqMatches, productMatches)
}

// notifyHandoff alerts the support team on both channels without blocking
// the visitor's reply. Either notifier may be nil.
func (s *chatService) notifyHandoff(ctx context.Context, visitorMessage string) {
	requestID := contextPkg.GetRequestID(ctx)
	visitorMessage = utils.New().TruncateRunes(visitorMessage, handoffAlertMaxRunes)

	if s.whatsapp != nil {
		go func() {
			sendCtx, cancel := context.WithTimeout(context.Background(), handoffAlertTimeout)
			defer cancel()
			if err := s.whatsapp.SendHandoffAlert(sendCtx, visitorMessage); err != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"error":      err.Error(),
				}).Error("Failed to send whatsapp handoff alert")
			}
		}()
	}

	if s.mailer != nil {
		go func() {
			if err := s.mailer.SendHandoffAlert(visitorMessage); err != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"error":      err.Error(),
				}).Error("Failed to send email handoff alert")
			}
		}()
	}
}
