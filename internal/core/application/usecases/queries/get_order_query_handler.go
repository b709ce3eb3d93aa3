package queries

import (
	"context"
	"fmt"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order card from the database.
// Joins the craftsman directory so the card can show who holds the order.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderNo)
//
//	card, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get order: %v", err)
//	    return err
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order card queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve the order with the given number.
// Returns ObjectNotFoundError when no order carries that number.
// Converts database types to domain types for consistency.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.order_no,
			o.status,
			o.product,
			o.design,
			o.purity,
			o.narration,
			o.quantity,
			o.order_date,
			o.due_date,
			o.partner_code,
			o.created_by,
			c.code,
			c.business_name
		FROM orders o
		LEFT JOIN craftsmen c ON c.id = o.craftsman_id
		WHERE o.order_no = ?
	`, query.OrderNo().String()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderNo().String())
	}

	var card GetOrderQueryResponse
	var orderNo string
	var status int
	var partnerCode *string
	var createdBy uuid.UUID
	var craftsmanCode, craftsmanName *string

	err = rows.Scan(
		&orderNo,
		&status,
		&card.Product,
		&card.Design,
		&card.Purity,
		&card.Narration,
		&card.Quantity,
		&card.OrderDate,
		&card.DueDate,
		&partnerCode,
		&createdBy,
		&craftsmanCode,
		&craftsmanName,
	)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	number, numErr := kernel.NewOrderNumber(orderNo)
	if numErr != nil {
		return GetOrderQueryResponse{}, numErr
	}
	card.OrderNo = number

	orderStatus := order.Status(status)
	if statusErr := orderStatus.Validate(); statusErr != nil {
		return GetOrderQueryResponse{}, statusErr
	}
	card.Status = orderStatus

	if partnerCode != nil {
		code, codeErr := kernel.NewPartnerCode(*partnerCode)
		if codeErr != nil {
			return GetOrderQueryResponse{}, codeErr
		}
		card.PartnerCode = &code
	}

	creatorID, idErr := kernel.UUIDFromBytes(createdBy[:])
	if idErr != nil {
		return GetOrderQueryResponse{}, idErr
	}
	card.CreatedBy = creatorID

	if craftsmanCode != nil && craftsmanName != nil {
		display := fmt.Sprintf("%s-%s", *craftsmanCode, *craftsmanName)
		card.Craftsman = &display
	}

	if err = rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return card, nil
}
