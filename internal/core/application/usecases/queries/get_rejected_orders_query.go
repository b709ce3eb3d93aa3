package queries

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var (
	ErrGetRejectedOrdersQueryIsNotConstructed = errors.New(
		"GetRejectedOrdersQuery must be created via NewGetRejectedOrdersQuery constructor",
	)
)

// GetRejectedOrdersQuery retrieves orders sitting in the rejected status
// together with the craftsman who refused them. These are the orders
// reassignment could not place, waiting for manual intervention.
//
// Example:
//
//	query := NewGetRejectedOrdersQuery()
//	handler := NewGetRejectedOrdersQueryHandler(db)
//
//	rejected, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve rejected orders: %w", err)
//	}
//
//	fmt.Printf("%d orders rejected\n", rejected.TotalRejected)
type GetRejectedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRejectedOrdersQuery creates a query to retrieve all rejected orders.
// This is a parameterless query that fetches the complete rejected list.
func NewGetRejectedOrdersQuery() GetRejectedOrdersQuery {
	return GetRejectedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRejectedOrdersQueryIsNotConstructed if validation fails.
func (q GetRejectedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRejectedOrdersQueryIsNotConstructed)
}

// RejectedOrderInfo describes one rejected order and the craftsman who
// refused it, identified by partner code and business name.
type RejectedOrderInfo struct {
	OrderNo        kernel.OrderNumber
	RejectedByCode kernel.PartnerCode
	RejectedByName string
}

// GetRejectedOrdersQueryResponse bundles the rejected order rows with their
// total count, matching the review screen that lists and counts them together.
type GetRejectedOrdersQueryResponse struct {
	Orders        []RejectedOrderInfo
	TotalRejected int
}
