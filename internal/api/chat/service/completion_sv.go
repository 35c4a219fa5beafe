package chatService

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"BluewudSupport/internal/api/chat"
	"BluewudSupport/internal/entity"
	"BluewudSupport/internal/knowledge"
	contextPkg "BluewudSupport/pkg/context"
	"BluewudSupport/pkg/gemini"
	"BluewudSupport/pkg/nlp"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const replyCacheTTL = 15 * time.Minute

// generateReply asks the completion service for an open-ended answer,
// grounding it in the retrieved FAQ and product context. Every failure mode
// maps onto a canned reply; no error escapes.
func (s *chatService) generateReply(
	ctx context.Context,
	query string,
	snap *knowledge.Snapshot,
	faqMatches []entity.FaqMatch,
	productMatches []entity.ProductMatch,
) *chat.MessageResponse {
	requestID := contextPkg.GetRequestID(ctx)

	if s.gemini == nil {
		return &chat.MessageResponse{
			Reply:    snap.Messages.Offline,
			Category: chat.CategoryAIResponse,
		}
	}

	cacheKey := nlp.Normalize(query)
	if s.replyCache != nil {
		if cached, ok := s.replyCache.GetReply(ctx, cacheKey); ok {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Debug("Completion served from reply cache")
			return &chat.MessageResponse{
				Reply:    cached,
				Category: chat.CategoryAIResponse,
			}
		}
	}

	systemPrompt := buildSystemPrompt(snap, faqMatches, productMatches)

	reply, err := s.gemini.GenerateReply(ctx, systemPrompt, query)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Completion fallback failed")

		apology := snap.Messages.Apology
		if errors.Is(err, gemini.ErrBlocked) {
			apology = snap.Messages.Declined
		}

		return &chat.MessageResponse{
			Reply:    apology,
			Category: chat.CategoryAIResponse,
		}
	}

	if s.replyCache != nil {
		_ = s.replyCache.SetReply(ctx, cacheKey, reply, replyCacheTTL)
	}

	return &chat.MessageResponse{
		Reply:    reply,
		Category: chat.CategoryAIResponse,
	}
}

// buildSystemPrompt assembles the bounded context block: brand facts,
// contact channels, the live offer and whatever the rankers retrieved.
func buildSystemPrompt(
	snap *knowledge.Snapshot,
	faqMatches []entity.FaqMatch,
	productMatches []entity.ProductMatch,
) string {
	cfg := snap.Config

	var sb strings.Builder

	botName := cfg.BotName
	if botName == "" {
		botName = "Furniture Support Assistant"
	}

	fmt.Fprintf(&sb, "You are %q - a friendly AI assistant for Bluewud furniture.\n\n", botName)

	sb.WriteString("## CONTACT INFO (provide when user needs help):\n")
	fmt.Fprintf(&sb, "Phone/WhatsApp: %s\n", cfg.Contact.WhatsApp)
	fmt.Fprintf(&sb, "Email: %s\n", cfg.Contact.Email)
	fmt.Fprintf(&sb, "Hours: %s\n", cfg.Contact.Hours)
	if cfg.ShopLink != "" {
		fmt.Fprintf(&sb, "Shop: %s\n", cfg.ShopLink)
	}

	if cfg.CurrentOffer.Name != "" {
		sb.WriteString("\n## CURRENT OFFER:\n")
		fmt.Fprintf(&sb, "%s: %s off with code %q\n", cfg.CurrentOffer.Name, cfg.CurrentOffer.Discount, cfg.CurrentOffer.Code)
	}

	if len(cfg.KeyFacts) > 0 {
		sb.WriteString("\n## KEY FACTS:\n")
		for _, fact := range cfg.KeyFacts {
			fmt.Fprintf(&sb, "- %s\n", fact)
		}
	}

	if len(faqMatches) > 0 {
		sb.WriteString("\n## RELEVANT FAQ ENTRIES:\n")
		for _, match := range faqMatches {
			fmt.Fprintf(&sb, "### %s\nQ: %s\nA: %s\n\n", match.Category, match.Entry.Question, match.Entry.Answer)
		}
	}

	if len(productMatches) > 0 {
		sb.WriteString("\n## MATCHING PRODUCTS:\n")
		for _, match := range productMatches {
			name := match.ResolvedName
			if name == "" {
				name = match.Product.Category
			}
			fmt.Fprintf(&sb, "- %s (SKU %s): %s, %.0fx%.0fx%.0f cm, %.1f kg, ₹%.0f\n",
				name,
				match.Product.SKU,
				match.Product.Category,
				match.Product.Dimensions.Length,
				match.Product.Dimensions.Breadth,
				match.Product.Dimensions.Height,
				match.Product.Weight,
				match.Product.Price,
			)
		}
	}

	sb.WriteString(`
## RULES:
1. Keep responses SHORT (2-4 sentences)
2. Only state facts listed above; if unsure, offer to connect with human support
3. Never invent prices, dimensions or policies
4. Use emojis sparingly (1-2 per response)
5. Be warm and helpful`)

	return sb.String()
}
