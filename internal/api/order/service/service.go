package orderService

import (
	"BluewudSupport/internal/api/order"
	orderRepository "BluewudSupport/internal/api/order/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IOrderService interface {
	TrackOrder(ctx context.Context, req order.TrackOrderRequest) (order.TrackOrderResponse, error)
}

type orderService struct {
	log             *logrus.Logger
	orderRepository orderRepository.Repository
}

// New builds the tracking service. The repository may be nil when no
// database is configured; lookups then resolve against the demo orders.
func New(log *logrus.Logger, or orderRepository.Repository) IOrderService {
	return &orderService{
		log:             log,
		orderRepository: or,
	}
}
