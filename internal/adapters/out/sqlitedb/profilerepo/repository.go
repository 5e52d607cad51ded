package profilerepo

import (
	"context"
	"encoding/json"

	"freightmatch/internal/adapters/out/sqlitedb/recordstore"
	"freightmatch/internal/core/domain/model/profile"

	"gorm.io/gorm"
)

// GormProfileRepository implements ports.ProfileRepository over the
// profile record.
type GormProfileRepository struct {
	db *gorm.DB
}

// NewGormProfileRepository creates a repository bound to the given
// connection or transaction.
func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// Get loads the persisted profile. An absent or unreadable record yields
// the built-in default profile, matching first-launch behavior.
func (r *GormProfileRepository) Get(ctx context.Context) (*profile.Profile, error) {
	raw, ok, err := recordstore.Read(r.db.WithContext(ctx), recordstore.ProfileKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return profile.NewProfile(), nil
	}

	var dto ProfileDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		return profile.NewProfile(), nil
	}

	return toDomain(dto), nil
}

// Save writes the profile record.
func (r *GormProfileRepository) Save(ctx context.Context, aggregate *profile.Profile) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	raw, err := json.Marshal(fromDomain(aggregate))
	if err != nil {
		return err
	}

	return recordstore.Write(r.db.WithContext(ctx), recordstore.ProfileKey, string(raw))
}
