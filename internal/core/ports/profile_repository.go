package ports

import (
	"context"

	"freightmatch/internal/core/domain/model/profile"
)

// ProfileRepository persists the single local carrier profile under its own
// storage record, independently of orders.
type ProfileRepository interface {
	// Get loads the persisted profile. When no record exists yet, the
	// built-in default profile is returned instead of an error.
	Get(ctx context.Context) (*profile.Profile, error)

	// Save writes the profile record.
	Save(ctx context.Context, aggregate *profile.Profile) error
}
