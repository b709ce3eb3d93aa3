package commands

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/services"
	"atelier/internal/core/ports"
)

// SubmitOrderRequestCommandHandler handles the business logic for order
// request submission. Allocates the next order number and persists the
// request in "pending-verification" status, where it waits for key-user
// screening.
type SubmitOrderRequestCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSubmitOrderRequestCommandHandler creates a handler for request submission.
// Requires an OrderUoWFactory for transactional persistence.
func NewSubmitOrderRequestCommandHandler(uowFactory OrderUoWFactory) SubmitOrderRequestCommandHandler {
	return SubmitOrderRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the request submission command.
// Requests share the order number sequence with directly created orders, so
// the same bounded retry applies when a concurrent creation takes the derived
// number first. Returns the allocated order number.
func (h *SubmitOrderRequestCommandHandler) Handle(ctx context.Context, cmd SubmitOrderRequestCommand) (kernel.OrderNumber, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.OrderNumber{}, err
	}

	if err := services.NewTransitionPolicy().Authorize(cmd.Actor(), services.TransitionSubmitRequest); err != nil {
		return kernel.OrderNumber{}, err
	}

	var lastErr error
	for attempt := 0; attempt < maxNumberAllocationAttempts; attempt++ {
		orderNo, err := h.submitOnce(ctx, cmd)
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

// submitOnce runs a single allocation attempt in its own transaction.
func (h *SubmitOrderRequestCommandHandler) submitOnce(ctx context.Context, cmd SubmitOrderRequestCommand) (kernel.OrderNumber, error) {
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

	request, err := order.NewOrderRequest(
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

	if err = orderRepo.Add(ctx, request); err != nil {
		return kernel.OrderNumber{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.OrderNumber{}, err
	}

	return orderNo, nil
}
