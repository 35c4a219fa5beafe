package chatHandler

import (
	"time"

	"BluewudSupport/internal/api/chat"
	contextPkg "BluewudSupport/pkg/context"

	"github.com/gofiber/websocket/v2"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/net/context"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Visitors idle while browsing the catalog, so the read window is generous
// compared to the per-message processing budget.
const wsReadTimeout = 5 * time.Minute

type wsInbound struct {
	Message string `json:"message"`
}

func (h *ChatHandler) handleChatWebSocket(c *websocket.Conn) {
	h.log.Info("Chat WebSocket client connected")
	defer h.log.Info("Chat WebSocket client disconnected")

	c.SetPingHandler(func(data string) error {
		if err := c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			h.log.Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	snap := h.store.Snapshot()
	welcome := chat.MessageResponse{
		Reply:    snap.Messages.Welcome,
		Category: chat.CategoryGreeting,
	}
	if err := c.WriteJSON(welcome); err != nil {
		h.log.Errorf("Error sending welcome message: %v", err)
		return
	}

	for {
		if err := c.SetReadDeadline(time.Now().Add(wsReadTimeout)); err != nil {
			h.log.Errorf("Error setting read deadline: %v", err)
			break
		}

		messageType, payload, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Errorf("Chat WebSocket error: %v", err)
			} else {
				h.log.Info("Chat WebSocket connection closed")
			}
			break
		}

		if messageType != websocket.TextMessage {
			h.log.Warnf("Received unexpected message type: %d", messageType)
			continue
		}

		message := decodeInbound(payload)

		msgCtx, cancel := context.WithTimeout(context.Background(), processMessageTimeout)
		requestID, _ := c.Locals("X-Request-ID").(string)
		if requestID != "" {
			msgCtx = contextPkg.WithRequestID(msgCtx, requestID)
		}

		response := h.chatService.ProcessMessage(msgCtx, message)
		cancel()

		if err := c.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
			h.log.Errorf("Error setting write deadline: %v", err)
			break
		}

		if err := c.WriteJSON(response); err != nil {
			h.log.Errorf("Error writing JSON response: %v", err)
			break
		}

		if err := c.SetWriteDeadline(time.Time{}); err != nil {
			h.log.Errorf("Error resetting write deadline: %v", err)
			break
		}
	}
}

// decodeInbound accepts both the JSON envelope the widget sends and bare
// text typed into test clients.
func decodeInbound(payload []byte) string {
	var inbound wsInbound
	if err := json.Unmarshal(payload, &inbound); err == nil && inbound.Message != "" {
		return inbound.Message
	}
	return string(payload)
}
