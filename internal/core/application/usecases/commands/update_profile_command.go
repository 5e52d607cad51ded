package commands

import (
	"errors"

	"freightmatch/internal/core/domain/model/profile"
	"freightmatch/internal/pkg/guard"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// UpdateProfileCommand carries a partial update of the carrier profile.
// Nil fields are left unchanged; only the supplied keys are replaced.
// Field contents are not validated: empty name or plate strings are
// accepted, mirroring the prototype's profile screen.
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	patch profile.Patch

	guard guard.ConstructorGuard
}

// NewUpdateProfileCommand creates a command merging the given patch into
// the stored profile. An all-nil patch is valid and leaves the profile as
// it is.
func NewUpdateProfileCommand(patch profile.Patch) (UpdateProfileCommand, error) {
	return UpdateProfileCommand{
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

// Patch returns the partial update to apply.
func (c UpdateProfileCommand) Patch() profile.Patch {
	return c.patch
}
