package commands

import (
	"context"
	"errors"
	"fmt"

	"freightmatch/internal/core/domain/services"
	"freightmatch/internal/core/ports"
	"freightmatch/internal/pkg/errs"
)

// AcceptOrderCommandHandler transitions an order from pending to accepted.
//
// Enforced rules:
//   - the order must exist (ObjectNotFoundError otherwise)
//   - the order must be pending (the status machine rejects the rest)
//   - no other order may currently be active (ErrActiveOrderExists)
//
// After a successful commit a "carrier en route" notification is emitted
// toward the shipper side, best-effort.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.ActiveOrderPolicy
	notifier   ports.Notifier
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewActiveOrderPolicy(),
		notifier:   notifier,
	}
}

// Handle processes the accept command. Any rejection rolls the transaction
// back and leaves the stored collection untouched.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	active, err := orderRepo.GetActive(ctx)
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = h.policy.ValidateAccept(target, active); err != nil {
		return err
	}

	if err = target.Accept(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Best-effort: a lost notification never fails an accepted order.
	_ = h.notifier.Notify(ctx,
		"Carrier en route",
		fmt.Sprintf("Order #%s was accepted and is on its way.", cmd.OrderID()),
	)

	return nil
}
