package queries

import (
	"errors"

	"freightmatch/internal/pkg/guard"
)

var ErrGetActiveOrderQueryIsNotConstructed = errors.New(
	"GetActiveOrderQuery must be created via NewGetActiveOrderQuery constructor",
)

// GetActiveOrderQuery retrieves the carrier's active order: the one in
// accepted status, not yet delivered. The UI routes the carrier straight
// into this order's detail view whenever it exists.
type GetActiveOrderQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrderQuery creates a parameterless query for the active
// order.
func NewGetActiveOrderQuery() GetActiveOrderQuery {
	return GetActiveOrderQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrderQueryIsNotConstructed)
}
