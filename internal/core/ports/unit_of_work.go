package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for each command. This keeps
// concurrent operations isolated from each other's transactions.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary around a read-modify-write of the
// durable records. A mutation and its persistence commit together: when
// Commit returns nil the in-memory change is also durable, and a rollback
// leaves storage byte-for-byte unchanged.
type UnitOfWork interface {
	// Begin starts a new storage transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback discards the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction when one is active.
	OrderRepository() OrderRepository

	// ProfileRepository returns a ProfileRepository bound to the current
	// transaction when one is active.
	ProfileRepository() ProfileRepository
}
