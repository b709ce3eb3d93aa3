// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, role authorization,
// transaction management, and persistence.
package commands

import (
	"context"

	"atelier/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CraftsmanRepoFactory provides access to craftsman repository within a transaction.
	CraftsmanRepoFactory interface {
		CraftsmanRepository() ports.CraftsmanRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CraftsmanUoW manages transactions for craftsman-only operations.
	// Used when commands only touch the craftsman directory.
	CraftsmanUoW interface {
		TxManager
		CraftsmanRepoFactory
	}

	// CraftsmanUoWFactory creates new craftsman unit of work instances.
	CraftsmanUoWFactory interface {
		Create() CraftsmanUoW
	}

	// UoW manages transactions across both order and craftsman aggregates.
	// Used for commands that coordinate changes between multiple aggregate types,
	// such as assignment and rejection-with-reassignment.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   craftsmanRepo := uow.CraftsmanRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		CraftsmanRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
