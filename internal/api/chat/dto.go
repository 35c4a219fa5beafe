package chat

const (
	ActionHandoff = "handoff"

	CategoryGreeting   = "greeting"
	CategoryFarewell   = "farewell"
	CategoryGratitude  = "gratitude"
	CategoryHandoff    = "handoff"
	CategoryAIResponse = "ai_response"
	CategoryError      = "error"
)

type ProcessMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

// MessageResponse is the pipeline's outward contract: always a non-empty
// reply, optionally an action signal consumed by the front end.
type MessageResponse struct {
	Reply    string `json:"reply"`
	Action   string `json:"action,omitempty"`
	Category string `json:"category,omitempty"`
}
