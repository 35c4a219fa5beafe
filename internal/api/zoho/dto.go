package zoho

const HandlerTrigger = "trigger"

// WebhookRequest mirrors the SalesIQ bot webhook payload. The message can
// arrive under several keys and as either a bare string or a wrapper object,
// depending on the channel and SalesIQ version.
type WebhookRequest struct {
	Handler   string                 `json:"handler"`
	Operation string                 `json:"operation"`
	Data      map[string]interface{} `json:"data"`
	Message   interface{}            `json:"message"`
	Text      interface{}            `json:"text"`
	Visitor   map[string]interface{} `json:"visitor"`
}

type Reply struct {
	Text string `json:"text"`
}

// WebhookResponse is the shape SalesIQ renders: each reply becomes one chat
// bubble, the optional action drives widget behavior like agent forwarding.
type WebhookResponse struct {
	Action  string  `json:"action,omitempty"`
	Replies []Reply `json:"replies"`
}

// ExtractMessage resolves the visitor's text, trying the payload locations
// in the order SalesIQ has used them across versions.
func (r *WebhookRequest) ExtractMessage() string {
	candidates := make([]interface{}, 0, 3)
	if r.Data != nil {
		candidates = append(candidates, r.Data["message"])
	}
	candidates = append(candidates, r.Message, r.Text)

	for _, candidate := range candidates {
		if text := messageText(candidate); text != "" {
			return text
		}
	}

	return ""
}

func messageText(v interface{}) string {
	switch value := v.(type) {
	case string:
		return value
	case map[string]interface{}:
		for _, key := range []string{"text", "content", "payload"} {
			if text, ok := value[key].(string); ok && text != "" {
				return text
			}
		}
	}
	return ""
}
