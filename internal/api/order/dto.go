package order

type TrackOrderRequest struct {
	OrderID string `json:"order_id" validate:"required"`
	Phone   string `json:"phone,omitempty"`
}

// TrackOrderResponse reports a miss with found=false rather than an error so
// the widget can render a friendly message.
type TrackOrderResponse struct {
	Found        bool   `json:"found"`
	OrderID      string `json:"order_id,omitempty"`
	Status       string `json:"status,omitempty"`
	ExpectedDate string `json:"expected_date,omitempty"`
	Courier      string `json:"courier,omitempty"`
	Message      string `json:"message,omitempty"`
}
