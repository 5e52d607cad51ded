package queries

import (
	"context"

	"freightmatch/internal/core/ports"
)

// GetProfileQueryHandler reads the carrier profile, falling back to the
// built-in defaults when no record has been persisted yet.
type GetProfileQueryHandler struct {
	profiles ports.ProfileRepository
}

// NewGetProfileQueryHandler creates a handler for profile queries.
func NewGetProfileQueryHandler(profiles ports.ProfileRepository) GetProfileQueryHandler {
	return GetProfileQueryHandler{profiles: profiles}
}

// Handle returns the current profile values.
func (h GetProfileQueryHandler) Handle(ctx context.Context, query GetProfileQuery) (ProfileReadModel, error) {
	if err := query.Validate(); err != nil {
		return ProfileReadModel{}, err
	}

	current, err := h.profiles.Get(ctx)
	if err != nil {
		return ProfileReadModel{}, err
	}

	return ProfileReadModel{
		Name:         current.Name(),
		LicensePlate: current.LicensePlate(),
		PhotoURI:     current.PhotoURI(),
	}, nil
}
