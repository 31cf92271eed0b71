package queries

import (
	"context"

	"bakehouse/internal/core/domain/model/order"
	"bakehouse/internal/core/ports"
)

// GetOrdersQueryHandler lists the orders booked on a date range. Unlike the
// aggregate queries it goes through the repository, because callers want the
// rehydrated aggregates with their line items, not a projection.
type GetOrdersQueryHandler struct {
	orderRepository ports.OrderRepository
}

// NewGetOrdersQueryHandler creates a handler for order listings.
func NewGetOrdersQueryHandler(orderRepository ports.OrderRepository) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{orderRepository: orderRepository}
}

// Handle returns the orders with a delivery date in the query's range,
// ordered by delivery date.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orderRepository.GetByDateRange(ctx, query.From(), query.To())
}
