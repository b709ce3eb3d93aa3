package commands

import (
	"context"
	"time"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/services"
)

// ApproveCompletionCommandHandler records the admin sign-off that closes an
// order within a single transaction.
type ApproveCompletionCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewApproveCompletionCommandHandler creates a handler for completion sign-off.
// Requires an OrderUoWFactory for transactional persistence.
func NewApproveCompletionCommandHandler(uowFactory OrderUoWFactory) ApproveCompletionCommandHandler {
	return ApproveCompletionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sign-off command.
// Works from either completion report state and closes the order as
// "complete" with a completion-approval stamp. The craftsman stays on the
// closed order for the record. Returns the resulting status.
func (h *ApproveCompletionCommandHandler) Handle(ctx context.Context, cmd ApproveCompletionCommand) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, err
	}

	if err := services.NewTransitionPolicy().Authorize(cmd.Actor(), services.TransitionApproveCompletion); err != nil {
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

	if err = aggregate.ApproveCompletion(cmd.Actor().ID(), cmd.Notes(), time.Now().UTC()); err != nil {
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
