package commands

import (
	"context"
	"fmt"

	"freightmatch/internal/core/ports"
)

// CompleteOrderCommandHandler transitions an order from accepted to
// delivered, recording the proof-of-delivery photo at that transition and
// never earlier. After a successful commit a "delivery completed"
// notification is emitted, best-effort.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the completion command. Unknown ids and invalid prior
// states roll the transaction back and leave the stored collection
// untouched.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	if err = target.Deliver(cmd.ProofPhoto()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Best-effort: a lost notification never fails a delivered order.
	_ = h.notifier.Notify(ctx,
		"Delivery completed",
		fmt.Sprintf("Order #%s was delivered. Check the proof of delivery.", cmd.OrderID()),
	)

	return nil
}
