package orderService

import (
	"errors"
	"strings"

	"BluewudSupport/internal/api/order"
	"BluewudSupport/internal/entity"
	contextPkg "BluewudSupport/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// demoOrders back the tracking widget in environments without a database,
// matching the sample order numbers printed in the onboarding docs.
var demoOrders = map[string]entity.Order{
	"12345": {ID: "12345", Status: "Out for Delivery 🚚", ExpectedDate: "Today", Courier: "BlueDart"},
	"55555": {ID: "55555", Status: "Delivered ✅", ExpectedDate: "Yesterday", Courier: "BlueDart"},
	"99999": {ID: "99999", Status: "Processing 📦", ExpectedDate: "Est. Dec 12", Courier: "Pending"},
}

func (s *orderService) TrackOrder(ctx context.Context, req order.TrackOrderRequest) (order.TrackOrderResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	orderID := strings.TrimSpace(req.OrderID)
	if orderID == "" {
		return order.TrackOrderResponse{}, order.ErrMissingOrderID
	}

	if s.orderRepository != nil {
		resp, err := s.trackFromDatabase(ctx, orderID)
		if err == nil {
			return resp, nil
		}
		if errors.Is(err, order.ErrOrderNotFound) {
			return notFoundResponse(orderID), nil
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"order_id":   orderID,
			"error":      err.Error(),
		}).Warn("Order lookup failed, falling back to demo orders")
	}

	if demo, ok := demoOrders[orderID]; ok {
		return foundResponse(demo), nil
	}

	return notFoundResponse(orderID), nil
}

func (s *orderService) trackFromDatabase(ctx context.Context, orderID string) (order.TrackOrderResponse, error) {
	repo, err := s.orderRepository.NewClient(false)
	if err != nil {
		return order.TrackOrderResponse{}, err
	}

	found, err := repo.Orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return order.TrackOrderResponse{}, err
	}

	return foundResponse(found), nil
}

func foundResponse(record entity.Order) order.TrackOrderResponse {
	return order.TrackOrderResponse{
		Found:        true,
		OrderID:      record.ID,
		Status:       record.Status,
		ExpectedDate: record.ExpectedDate,
		Courier:      record.Courier,
	}
}

func notFoundResponse(orderID string) order.TrackOrderResponse {
	return order.TrackOrderResponse{
		Found:   false,
		Message: "We couldn't find order #" + orderID + ". Please double-check the number or contact support.",
	}
}
