package queries

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves the order book, optionally narrowed by status and
// partner code. Callers filtering by display label resolve it to statuses with
// order.StatusesForLabel first; an empty status list means no status filter.
//
// Example:
//
//	query, err := NewGetOrdersQuery(order.StatusesForLabel("in-process"), nil)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve orders: %w", err)
//	}
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	statuses    []order.Status
	partnerCode *kernel.PartnerCode

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an order book query with the given filters.
// Both filters are optional: nil or empty statuses and a nil partner code
// leave the order book unfiltered.
func NewGetOrdersQuery(statuses []order.Status, partnerCode *kernel.PartnerCode) (GetOrdersQuery, error) {
	query := GetOrdersQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(query.setStatuses(statuses), query.setPartnerCode(partnerCode)); err != nil {
		return GetOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Statuses returns the status filter, empty when unfiltered.
func (q GetOrdersQuery) Statuses() []order.Status {
	return q.statuses
}

// PartnerCode returns the partner code filter, nil when unfiltered.
func (q GetOrdersQuery) PartnerCode() *kernel.PartnerCode {
	return q.partnerCode
}

func (q *GetOrdersQuery) setStatuses(statuses []order.Status) error {
	for _, status := range statuses {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	q.statuses = statuses
	return nil
}

func (q *GetOrdersQuery) setPartnerCode(partnerCode *kernel.PartnerCode) error {
	if partnerCode != nil {
		if err := partnerCode.Validate(); err != nil {
			return err
		}
	}

	q.partnerCode = partnerCode
	return nil
}

// GetOrdersQueryResponse represents one order book row in the read model.
// Craftsman carries the assignee's combined "CODE-BusinessName" form when the
// order is assigned, nil otherwise.
type GetOrdersQueryResponse struct {
	OrderNo     kernel.OrderNumber
	Status      order.Status
	PartnerCode *kernel.PartnerCode
	DueDate     *time.Time
	Craftsman   *string
}
