package queries

import (
	"context"

	"freightmatch/internal/core/ports"
)

// GetActiveOrderQueryHandler reads the order currently in accepted status.
type GetActiveOrderQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetActiveOrderQueryHandler creates a handler for active order
// queries.
func NewGetActiveOrderQueryHandler(orders ports.OrderRepository) GetActiveOrderQueryHandler {
	return GetActiveOrderQueryHandler{orders: orders}
}

// Handle returns the active order, or an ObjectNotFoundError when no order
// is currently accepted.
func (h GetActiveOrderQueryHandler) Handle(ctx context.Context, query GetActiveOrderQuery) (OrderReadModel, error) {
	if err := query.Validate(); err != nil {
		return OrderReadModel{}, err
	}

	active, err := h.orders.GetActive(ctx)
	if err != nil {
		return OrderReadModel{}, err
	}

	return toOrderReadModel(active), nil
}
