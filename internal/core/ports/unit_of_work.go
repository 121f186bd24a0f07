package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repository instances bound to the
// current transaction. Client code must explicitly manage the transaction
// lifecycle: Begin, then Commit or Rollback.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// PostautomatRepository returns a PostautomatRepository bound to the current transaction.
	PostautomatRepository() PostautomatRepository

	// ProductRepository returns a ProductRepository bound to the current transaction.
	ProductRepository() ProductRepository

	// OrderStatusRepository returns an OrderStatusRepository bound to the current transaction.
	OrderStatusRepository() OrderStatusRepository
}
