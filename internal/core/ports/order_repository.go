package ports

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
)

// ErrOrderNumberConflict is returned by Add when the aggregate's order number
// is already taken. Concurrent creations may derive the same successor number;
// the unique index turns the loser's insert into this error and the caller
// retries with a freshly derived number.
var ErrOrderNumberConflict = errors.New("order number already exists")

// OrderRepository defines the persistence contract for order aggregates.
// The user-facing identifier is the order number, so lookups key on it;
// the aggregate id stays internal to storage.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	// Returns ErrOrderNumberConflict when the order number is already taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate,
	// including its accumulated rejection history.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByNumber retrieves an order aggregate by its order number.
	// Returns the complete order with stamps and rejection history.
	GetByNumber(ctx context.Context, orderNo kernel.OrderNumber) (*order.Order, error)

	// Delete removes an order aggregate and its rejection history entirely.
	// Used by the key-user reject flow, which erases rather than archives.
	Delete(ctx context.Context, aggregate *order.Order) error

	// NextOrderNumber derives the successor of the most recently stored
	// order's number. Call it inside the same transaction as the Add so
	// the unique index can arbitrate concurrent allocations.
	NextOrderNumber(ctx context.Context) (kernel.OrderNumber, error)

	// GetAllByCreatorWithoutPartnerCode retrieves every order created by the
	// given actor that has no partner code yet. Used by the backfill flow to
	// stamp historical orders once the creator's code becomes known.
	GetAllByCreatorWithoutPartnerCode(ctx context.Context, createdBy kernel.UUID) ([]*order.Order, error)
}
