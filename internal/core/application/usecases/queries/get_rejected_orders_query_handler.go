package queries

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetRejectedOrdersQueryHandler retrieves rejected orders from the database.
// Joins the craftsman directory on the rejecter reference so each row names
// who refused the order.
//
// Example:
//
//	handler := NewGetRejectedOrdersQueryHandler(db)
//	query := NewGetRejectedOrdersQuery()
//
//	rejected, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get rejected orders: %v", err)
//	    return err
//	}
type GetRejectedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetRejectedOrdersQueryHandler creates a handler for rejected order queries.
// Requires a GORM database connection for query execution.
func NewGetRejectedOrdersQueryHandler(db *gorm.DB) GetRejectedOrdersQueryHandler {
	return GetRejectedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all rejected orders with their rejecters.
// A rejected order always references its rejecter, so the directory join is
// inner. Results are sorted by order number.
func (h GetRejectedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRejectedOrdersQuery,
) (GetRejectedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRejectedOrdersQueryResponse{}, err
	}

	orders := make([]RejectedOrderInfo, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.order_no,
			c.code,
			c.business_name
		FROM orders o
		JOIN craftsmen c ON c.id = o.rejected_by_id
		WHERE o.status = ?
		ORDER BY length(o.order_no), o.order_no
	`, order.Rejected).Rows()
	if err != nil {
		return GetRejectedOrdersQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var info RejectedOrderInfo
		var orderNo string
		var code string

		err = rows.Scan(
			&orderNo,
			&code,
			&info.RejectedByName,
		)
		if err != nil {
			return GetRejectedOrdersQueryResponse{}, err
		}

		number, numErr := kernel.NewOrderNumber(orderNo)
		if numErr != nil {
			return GetRejectedOrdersQueryResponse{}, numErr
		}
		info.OrderNo = number

		partnerCode, codeErr := kernel.NewPartnerCode(code)
		if codeErr != nil {
			return GetRejectedOrdersQueryResponse{}, codeErr
		}
		info.RejectedByCode = partnerCode

		orders = append(orders, info)
	}

	if err = rows.Err(); err != nil {
		return GetRejectedOrdersQueryResponse{}, err
	}

	return GetRejectedOrdersQueryResponse{
		Orders:        orders,
		TotalRejected: len(orders),
	}, nil
}
