package chatService

import (
	"testing"

	"BluewudSupport/internal/api/chat"
)

func TestFindIntent(t *testing.T) {
	snap := testSnapshot()
	svc := &chatService{log: testLogger(), intents: defaultIntentRules()}

	tests := []struct {
		name         string
		message      string
		wantCategory string
		wantNil      bool
	}{
		{name: "plain hi", message: "hi", wantCategory: chat.CategoryGreeting},
		{name: "stretched hii", message: "hiii", wantCategory: chat.CategoryGreeting},
		{name: "good morning embedded", message: "good morning team", wantCategory: chat.CategoryGreeting},
		{name: "namaste", message: "namaste ji", wantCategory: chat.CategoryGreeting},
		{name: "uppercase greeting", message: "HELLO", wantCategory: chat.CategoryGreeting},
		{name: "bye", message: "bye", wantCategory: chat.CategoryFarewell},
		{name: "thanks bye", message: "thanks bye", wantCategory: chat.CategoryFarewell},
		{name: "thats all", message: "that's all", wantCategory: chat.CategoryFarewell},
		{name: "bare thanks", message: "thanks", wantCategory: chat.CategoryGratitude},
		{name: "thank you", message: "Thank You", wantCategory: chat.CategoryGratitude},
		{name: "ty", message: "ty", wantCategory: chat.CategoryGratitude},
		{name: "talk to human", message: "can i talk to a human please", wantCategory: chat.CategoryHandoff},
		{name: "speak with agent", message: "speak with agent", wantCategory: chat.CategoryHandoff},
		{name: "customer care", message: "give me customer care number", wantCategory: chat.CategoryHandoff},
		{name: "call me", message: "call me back tomorrow", wantCategory: chat.CategoryHandoff},
		{name: "bare agent", message: "agent", wantCategory: chat.CategoryHandoff},
		{name: "hello mid sentence", message: "hello i need a tv unit", wantNil: true},
		{name: "thanks for info question", message: "thanks for the info, what about delivery?", wantNil: true},
		{name: "product question", message: "does the shoe rack fit 12 pairs", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.findIntent(tt.message, snap.Messages)

			if tt.wantNil {
				if got != nil {
					t.Fatalf("findIntent(%q) = %+v, want nil", tt.message, got)
				}
				return
			}

			if got == nil {
				t.Fatalf("findIntent(%q) = nil, want category %q", tt.message, tt.wantCategory)
			}
			if got.Category != tt.wantCategory {
				t.Errorf("Category = %q, want %q", got.Category, tt.wantCategory)
			}
			if got.Reply == "" {
				t.Error("intent reply is empty")
			}
		})
	}
}

func TestFindIntentOrderPrecedence(t *testing.T) {
	snap := testSnapshot()
	svc := &chatService{log: testLogger(), intents: defaultIntentRules()}

	// "thanks bye" matches both the farewell and gratitude rule sets; the
	// earlier farewell rule must win.
	got := svc.findIntent("thanks bye", snap.Messages)
	if got == nil || got.Category != chat.CategoryFarewell {
		t.Fatalf("findIntent(\"thanks bye\") = %+v, want farewell", got)
	}
}

func TestFindIntentHandoffCarriesAction(t *testing.T) {
	snap := testSnapshot()
	svc := &chatService{log: testLogger(), intents: defaultIntentRules()}

	for _, message := range []string{"human", "support", "contact details please"} {
		got := svc.findIntent(message, snap.Messages)
		if got == nil {
			t.Errorf("findIntent(%q) = nil, want handoff", message)
			continue
		}
		if got.Action != chat.ActionHandoff {
			t.Errorf("findIntent(%q).Action = %q, want %q", message, got.Action, chat.ActionHandoff)
		}
	}
}
