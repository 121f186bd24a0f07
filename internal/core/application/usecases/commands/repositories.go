// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"pickpoint/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each command declares the narrowest unit of work it needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PostautomatRepoFactory provides access to the postautomat repository within a transaction.
	PostautomatRepoFactory interface {
		PostautomatRepository() ports.PostautomatRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// StatusRepoFactory provides access to the order-status repository within a transaction.
	StatusRepoFactory interface {
		OrderStatusRepository() ports.OrderStatusRepository
	}

	// OrderUoW manages transactions for order-only operations (delete).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW manages transactions for order creation, which resolves
	// every reference entity: products, the target locker, and the status.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		PostautomatRepoFactory
		ProductRepoFactory
		StatusRepoFactory
	}

	// CreateOrderUoWFactory creates new unit of work instances for order creation.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// ChangeStatusUoW manages transactions for status changes, which resolve
	// the target status against the reference table.
	ChangeStatusUoW interface {
		TxManager
		OrderRepoFactory
		StatusRepoFactory
	}

	// ChangeStatusUoWFactory creates new unit of work instances for status changes.
	ChangeStatusUoWFactory interface {
		Create() ChangeStatusUoW
	}

	// ChangeCompositionUoW manages transactions for composition changes,
	// which resolve the target products from the catalog.
	ChangeCompositionUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
	}

	// ChangeCompositionUoWFactory creates new unit of work instances for composition changes.
	ChangeCompositionUoWFactory interface {
		Create() ChangeCompositionUoW
	}
)
