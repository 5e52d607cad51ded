package queries

import (
	"errors"

	"freightmatch/internal/pkg/guard"
)

var ErrGetProfileQueryIsNotConstructed = errors.New(
	"GetProfileQuery must be created via NewGetProfileQuery constructor",
)

// GetProfileQuery retrieves the local carrier profile.
type GetProfileQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProfileQuery creates a parameterless query for the carrier
// profile.
func NewGetProfileQuery() GetProfileQuery {
	return GetProfileQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

// ProfileReadModel is the read-side representation of the carrier profile.
type ProfileReadModel struct {
	Name         string
	LicensePlate string
	PhotoURI     *string
}
