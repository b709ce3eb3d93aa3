package queries

import (
	"context"
	"fmt"
	"strings"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves order book rows from the database.
// Applies the query's optional status and partner code filters and joins the
// craftsman directory for the assignee column.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	query, _ := NewGetOrdersQuery(nil, nil)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get orders: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d orders\n", len(orders))
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order book queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve the filtered order book.
// Results are sorted by order number, shortest numbers first so the numeric
// sequence survives the varying zero-padding widths.
// Converts database types to domain types for consistency.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.order_no,
			o.status,
			o.partner_code,
			o.due_date,
			c.code,
			c.business_name
		FROM orders o
		LEFT JOIN craftsmen c ON c.id = o.craftsman_id
	`

	conditions := make([]string, 0)
	args := make([]any, 0)

	if len(query.Statuses()) > 0 {
		statusValues := make([]int, 0, len(query.Statuses()))
		for _, status := range query.Statuses() {
			statusValues = append(statusValues, int(status))
		}
		conditions = append(conditions, "o.status IN ?")
		args = append(args, statusValues)
	}

	if query.PartnerCode() != nil {
		conditions = append(conditions, "o.partner_code = ?")
		args = append(args, query.PartnerCode().String())
	}

	if len(conditions) > 0 {
		sql += " WHERE " + strings.Join(conditions, " AND ")
	}
	sql += " ORDER BY length(o.order_no), o.order_no"

	orders := make([]GetOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetOrdersQueryResponse
		var orderNo string
		var status int
		var partnerCode *string
		var craftsmanCode, craftsmanName *string

		err = rows.Scan(
			&orderNo,
			&status,
			&partnerCode,
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

		if partnerCode != nil {
			code, codeErr := kernel.NewPartnerCode(*partnerCode)
			if codeErr != nil {
				return nil, codeErr
			}
			row.PartnerCode = &code
		}

		if craftsmanCode != nil && craftsmanName != nil {
			display := fmt.Sprintf("%s-%s", *craftsmanCode, *craftsmanName)
			row.Craftsman = &display
		}

		orders = append(orders, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
