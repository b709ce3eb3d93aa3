package commands

import (
	"context"
	"time"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/services"
)

// ApproveOrderCommandHandler records the key-user approval on a pending
// order within a single transaction.
type ApproveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewApproveOrderCommandHandler creates a handler for order approval.
// Requires an OrderUoWFactory for transactional persistence.
func NewApproveOrderCommandHandler(uowFactory OrderUoWFactory) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval command.
// The order moves from "pending" to "in-process-awaiting-admin" with an
// approval stamp. Returns the resulting status.
func (h *ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, err
	}

	if err := services.NewTransitionPolicy().Authorize(cmd.Actor(), services.TransitionApproveOrder); err != nil {
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

	if err = aggregate.Approve(cmd.Actor().ID(), cmd.Notes(), time.Now().UTC()); err != nil {
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
