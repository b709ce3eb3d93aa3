package queries

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	ErrGetOverdueOrdersQueryIsNotConstructed = errors.New(
		"GetOverdueOrdersQuery must be created via NewGetOverdueOrdersQuery constructor",
	)
)

// GetOverdueOrdersQuery retrieves orders whose due date has passed without the
// order reaching a terminal status.
//
// Example:
//
//	query, err := NewGetOverdueOrdersQuery(time.Now())
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOverdueOrdersQueryHandler(db)
//
//	overdue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve overdue orders: %w", err)
//	}
type GetOverdueOrdersQuery struct { //nolint:recvcheck //using for validation
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueOrdersQuery creates a query for orders overdue at the given moment.
func NewGetOverdueOrdersQuery(asOf time.Time) (GetOverdueOrdersQuery, error) {
	query := GetOverdueOrdersQuery{guard: guard.NewConstructorGuard()}

	if err := query.setAsOf(asOf); err != nil {
		return GetOverdueOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOverdueOrdersQueryIsNotConstructed if validation fails.
func (q GetOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueOrdersQueryIsNotConstructed)
}

// AsOf returns the moment orders are measured against.
func (q GetOverdueOrdersQuery) AsOf() time.Time {
	return q.asOf
}

func (q *GetOverdueOrdersQuery) setAsOf(asOf time.Time) error {
	if asOf.IsZero() {
		return errs.NewValueIsRequiredError("asOf")
	}

	q.asOf = asOf
	return nil
}

// GetOverdueOrdersQueryResponse represents one overdue order in the read model.
// Craftsman carries the assignee's combined "CODE-BusinessName" form when the
// order is assigned, nil otherwise.
type GetOverdueOrdersQueryResponse struct {
	OrderNo   kernel.OrderNumber
	Status    order.Status
	DueDate   time.Time
	Craftsman *string
}
