// Package commands contains the write operations of the application core.
// Each operation is a command object with validated construction plus a
// handler that runs the mutation inside a unit of work: validate, begin,
// mutate the aggregate, persist, commit. Side effects such as user-facing
// notifications are dispatched only after a successful commit.
package commands

import (
	"context"

	"freightmatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers, scoped to the aggregates each command touches.
type (
	// TxManager handles the storage transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProfileRepoFactory provides access to the profile repository within
	// a transaction.
	ProfileRepoFactory interface {
		ProfileRepository() ports.ProfileRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ProfileUoW manages transactions for profile-only operations.
	ProfileUoW interface {
		TxManager
		ProfileRepoFactory
	}

	// ProfileUoWFactory creates new profile unit of work instances.
	ProfileUoWFactory interface {
		Create() ProfileUoW
	}
)
