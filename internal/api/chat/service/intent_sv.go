package chatService

import (
	"regexp"
	"strings"

	"BluewudSupport/internal/api/chat"
	"BluewudSupport/internal/entity"
)

// intentRule is one variant in a closed, ordered set. Evaluation order is
// significant: the first rule with any matching pattern wins, so handoff
// phrasings must never be reachable only through a later fuzzy stage.
type intentRule struct {
	patterns []*regexp.Regexp
	category string
	action   string
	reply    func(m entity.Messages) string
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile("(?i)"+p))
	}
	return compiled
}

func defaultIntentRules() []intentRule {
	return []intentRule{
		{
			patterns: compileAll(
				`^hi$`, `^hello$`, `^hey$`, `^hii+$`,
				`good\s*(morning|afternoon|evening)`, `^namaste`,
			),
			category: chat.CategoryGreeting,
			reply:    func(m entity.Messages) string { return m.Greeting },
		},
		{
			patterns: compileAll(
				`^bye$`, `^goodbye$`, `^thanks?\s*bye`, `^ok\s*bye`, `that'?s?\s*all`,
			),
			category: chat.CategoryFarewell,
			reply:    func(m entity.Messages) string { return m.Goodbye },
		},
		{
			patterns: compileAll(
				`^thanks?$`, `^thank\s*you$`, `^thx$`, `^ty$`,
			),
			category: chat.CategoryGratitude,
			reply:    func(m entity.Messages) string { return m.Gratitude },
		},
		{
			patterns: compileAll(
				`talk\s*to\s*(human|agent|person|someone)`,
				`speak\s*(with|to)\s*(human|agent|person)`,
				`customer\s*(care|service|support)`,
				`call\s*(back|me)`,
				`contact\s*(number|details)`,
				`^agent$`, `^human$`, `^support$`,
			),
			category: chat.CategoryHandoff,
			action:   chat.ActionHandoff,
			reply:    func(m entity.Messages) string { return m.Handoff },
		},
	}
}

// findIntent returns the canned response for the first matching rule, or
// nil when no fixed pattern recognizes the message.
func (s *chatService) findIntent(message string, messages entity.Messages) *chat.MessageResponse {
	cleanMsg := strings.ToLower(strings.TrimSpace(message))

	for _, rule := range s.intents {
		for _, pattern := range rule.patterns {
			if pattern.MatchString(cleanMsg) {
				return &chat.MessageResponse{
					Reply:    rule.reply(messages),
					Action:   rule.action,
					Category: rule.category,
				}
			}
		}
	}

	return nil
}
