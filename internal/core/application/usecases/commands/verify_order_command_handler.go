package commands

import (
	"context"
	"time"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/services"
)

// VerifyOrderCommandHandler records the admin verification on an approved
// order within a single transaction.
type VerifyOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewVerifyOrderCommandHandler creates a handler for order verification.
// Requires an OrderUoWFactory for transactional persistence.
func NewVerifyOrderCommandHandler(uowFactory OrderUoWFactory) VerifyOrderCommandHandler {
	return VerifyOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the verification command.
// The order moves from "in-process-awaiting-admin" to "verified" with a
// verification stamp. Returns the resulting status.
func (h *VerifyOrderCommandHandler) Handle(ctx context.Context, cmd VerifyOrderCommand) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, err
	}

	if err := services.NewTransitionPolicy().Authorize(cmd.Actor(), services.TransitionVerifyOrder); err != nil {
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

	if err = aggregate.Verify(cmd.Actor().ID(), cmd.Notes(), time.Now().UTC()); err != nil {
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
