package queries

import (
	"context"

	"freightmatch/internal/core/ports"
)

// GetAllOrdersQueryHandler reads the full order collection. The on-disk
// unit is a single document, so the read model is produced from the
// repository rather than from row scans.
type GetAllOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetAllOrdersQueryHandler creates a handler for full order list
// queries.
func NewGetAllOrdersQueryHandler(orders ports.OrderRepository) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{orders: orders}
}

// Handle returns every order newest-first. Read-only; no side effects.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	models := make([]OrderReadModel, 0, len(all))
	for _, o := range all {
		models = append(models, toOrderReadModel(o))
	}

	return models, nil
}
