package commands

import (
	"context"
)

// UpdateProfileCommandHandler merges a partial update into the stored
// carrier profile and persists the merged record immediately.
type UpdateProfileCommandHandler struct {
	uowFactory ProfileUoWFactory
}

// NewUpdateProfileCommandHandler creates a handler for profile updates.
func NewUpdateProfileCommandHandler(uowFactory ProfileUoWFactory) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the current profile (defaults when no record exists),
// applies the patch and saves the merged record in one transaction.
func (h *UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	profileRepo := uow.ProfileRepository()
	current, err := profileRepo.Get(ctx)
	if err != nil {
		return err
	}

	current.Apply(cmd.Patch())

	if err = profileRepo.Save(ctx, current); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
