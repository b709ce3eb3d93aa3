package queries

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order card by its order number.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderNo)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderQueryHandler(db)
//
//	card, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve order: %w", err)
//	}
//
//	fmt.Printf("Order %s is %s\n", card.OrderNo, card.Status)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderNo kernel.OrderNumber

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the order with the given number.
func NewGetOrderQuery(orderNo kernel.OrderNumber) (GetOrderQuery, error) {
	query := GetOrderQuery{guard: guard.NewConstructorGuard()}

	if err := query.setOrderNo(orderNo); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderNo returns the number of the order being retrieved.
func (q GetOrderQuery) OrderNo() kernel.OrderNumber {
	return q.orderNo
}

func (q *GetOrderQuery) setOrderNo(orderNo kernel.OrderNumber) error {
	if err := orderNo.Validate(); err != nil {
		return err
	}

	q.orderNo = orderNo
	return nil
}

// GetOrderQueryResponse represents the full order card in the read model.
// Craftsman carries the assignee's combined "CODE-BusinessName" form when the
// order is assigned, nil otherwise.
type GetOrderQueryResponse struct {
	OrderNo     kernel.OrderNumber
	Status      order.Status
	Product     string
	Design      string
	Purity      string
	Narration   string
	Quantity    int
	OrderDate   time.Time
	DueDate     *time.Time
	PartnerCode *kernel.PartnerCode
	CreatedBy   kernel.UUID
	Craftsman   *string
}
