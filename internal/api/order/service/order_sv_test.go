package orderService

import (
	"io"
	"testing"

	"BluewudSupport/internal/api/order"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestTrackOrderDemoFallback(t *testing.T) {
	svc := New(testLogger(), nil)

	tests := []struct {
		name       string
		orderID    string
		wantFound  bool
		wantStatus string
	}{
		{name: "out for delivery", orderID: "12345", wantFound: true, wantStatus: "Out for Delivery 🚚"},
		{name: "delivered", orderID: "55555", wantFound: true, wantStatus: "Delivered ✅"},
		{name: "processing", orderID: "99999", wantFound: true, wantStatus: "Processing 📦"},
		{name: "unknown order", orderID: "00000", wantFound: false},
		{name: "whitespace trimmed", orderID: "  12345  ", wantFound: true, wantStatus: "Out for Delivery 🚚"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.TrackOrder(context.Background(), order.TrackOrderRequest{OrderID: tt.orderID})
			if err != nil {
				t.Fatalf("TrackOrder returned error: %v", err)
			}

			if resp.Found != tt.wantFound {
				t.Fatalf("Found = %v, want %v", resp.Found, tt.wantFound)
			}
			if tt.wantFound && resp.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", resp.Status, tt.wantStatus)
			}
			if !tt.wantFound && resp.Message == "" {
				t.Error("miss response carries no message")
			}
		})
	}
}

func TestTrackOrderMissingID(t *testing.T) {
	svc := New(testLogger(), nil)

	for _, orderID := range []string{"", "   "} {
		if _, err := svc.TrackOrder(context.Background(), order.TrackOrderRequest{OrderID: orderID}); err != order.ErrMissingOrderID {
			t.Errorf("TrackOrder(%q) err = %v, want ErrMissingOrderID", orderID, err)
		}
	}
}
