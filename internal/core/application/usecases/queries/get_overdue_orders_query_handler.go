package queries

import (
	"context"
	"fmt"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOverdueOrdersQueryHandler retrieves overdue orders from the database.
// An order is overdue when it carries a due date earlier than the query's
// reference moment and has not reached a terminal status.
//
// Example:
//
//	handler := NewGetOverdueOrdersQueryHandler(db)
//	query, _ := NewGetOverdueOrdersQuery(time.Now())
//
//	overdue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get overdue orders: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d overdue orders\n", len(overdue))
type GetOverdueOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueOrdersQueryHandler creates a handler for overdue order queries.
// Requires a GORM database connection for query execution.
func NewGetOverdueOrdersQueryHandler(db *gorm.DB) GetOverdueOrdersQueryHandler {
	return GetOverdueOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all overdue orders.
// Orders without a due date never show up; complete, admin-rejected, and
// declined orders are past caring about their due dates.
// Results are sorted by due date, most overdue first.
func (h GetOverdueOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueOrdersQuery,
) ([]GetOverdueOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	overdue := make([]GetOverdueOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.order_no,
			o.status,
			o.due_date,
			c.code,
			c.business_name
		FROM orders o
		LEFT JOIN craftsmen c ON c.id = o.craftsman_id
		WHERE o.due_date IS NOT NULL
		  AND o.due_date < ?
		  AND o.status NOT IN ?
		ORDER BY o.due_date
	`, query.AsOf(), []int{int(order.Complete), int(order.AdminRejected), int(order.Declined)}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetOverdueOrdersQueryResponse
		var orderNo string
		var status int
		var craftsmanCode, craftsmanName *string

		err = rows.Scan(
			&orderNo,
			&status,
			&row.DueDate,
			&craftsmanCode,
			&craftsmanName,
		)
		if err != nil {
			return nil, err
		}

		number, numErr := kernel.NewOrderNumber(orderNo)
		if numErr != nil {
			return nil, numErr
		}
		row.OrderNo = number

		orderStatus := order.Status(status)
		if statusErr := orderStatus.Validate(); statusErr != nil {
			return nil, statusErr
		}
		row.Status = orderStatus

		if craftsmanCode != nil && craftsmanName != nil {
			display := fmt.Sprintf("%s-%s", *craftsmanCode, *craftsmanName)
			row.Craftsman = &display
		}

		overdue = append(overdue, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return overdue, nil
}
