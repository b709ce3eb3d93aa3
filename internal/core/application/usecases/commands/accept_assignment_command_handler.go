package commands

import (
	"context"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/services"
)

// AcceptAssignmentCommandHandler records the assigned craftsman taking an
// order into work within a single transaction.
type AcceptAssignmentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcceptAssignmentCommandHandler creates a handler for assignment acceptance.
// Requires an OrderUoWFactory for transactional persistence.
func NewAcceptAssignmentCommandHandler(uowFactory OrderUoWFactory) AcceptAssignmentCommandHandler {
	return AcceptAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acceptance command.
// Only the assigned craftsman may accept; the order moves from "assigned" to
// "in-process-by-craftsman". Returns the resulting status.
func (h *AcceptAssignmentCommandHandler) Handle(ctx context.Context, cmd AcceptAssignmentCommand) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, err
	}

	if err := services.NewTransitionPolicy().Authorize(cmd.Actor(), services.TransitionAcceptAssignment); err != nil {
		return order.Unknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetByNumber(ctx, cmd.OrderNo())
	if err != nil {
		return order.Unknown, err
	}

	if err = aggregate.AcceptAssignment(cmd.Actor().ID()); err != nil {
		return order.Unknown, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return order.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Unknown, err
	}

	return aggregate.Status(), nil
}
