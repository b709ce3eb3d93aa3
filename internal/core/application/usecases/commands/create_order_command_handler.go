package commands

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/services"
	"atelier/internal/core/ports"
)

// maxNumberAllocationAttempts bounds the retry loop around order number
// allocation. Concurrent creations can derive the same successor number;
// the unique index rejects the loser, which retries with a fresh number.
const maxNumberAllocationAttempts = 3

// CreateOrderCommandHandler handles the business logic for order creation.
// Allocates the next order number and persists the order in "pending" status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(caller, details, orderDate, nil, nil)
//
//	orderNo, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now pending and ready for key-user approval
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Derives the next order number and creates the order in "pending" status,
// retrying a bounded number of times when a concurrent creation takes the
// same number first. Returns the allocated order number.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.OrderNumber, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.OrderNumber{}, err
	}

	if err := services.NewTransitionPolicy().Authorize(cmd.Actor(), services.TransitionCreateOrder); err != nil {
		return kernel.OrderNumber{}, err
	}

	var lastErr error
	for attempt := 0; attempt < maxNumberAllocationAttempts; attempt++ {
		orderNo, err := h.createOnce(ctx, cmd)
		if errors.Is(err, ports.ErrOrderNumberConflict) {
			lastErr = err
			continue
		}
		if err != nil {
			return kernel.OrderNumber{}, err
		}

		return orderNo, nil
	}

	return kernel.OrderNumber{}, lastErr
}

// createOnce runs a single allocation attempt in its own transaction.
// The number derivation and the insert share the transaction so the unique
// index on the order number arbitrates concurrent allocations.
func (h *CreateOrderCommandHandler) createOnce(ctx context.Context, cmd CreateOrderCommand) (kernel.OrderNumber, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.OrderNumber{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	orderNo, err := orderRepo.NextOrderNumber(ctx)
	if err != nil {
		return kernel.OrderNumber{}, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		orderNo,
		cmd.Details(),
		cmd.OrderDate(),
		cmd.DueDate(),
		cmd.Actor().ID(),
		cmd.PartnerCode(),
	)
	if err != nil {
		return kernel.OrderNumber{}, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return kernel.OrderNumber{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.OrderNumber{}, err
	}

	return orderNo, nil
}
