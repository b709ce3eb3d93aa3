package commands

import (
	"context"
	"time"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/services"
)

// AdminRejectOrderCommandHandler records the terminal admin rejection on an
// approved order within a single transaction.
type AdminRejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdminRejectOrderCommandHandler creates a handler for admin rejection.
// Requires an OrderUoWFactory for transactional persistence.
func NewAdminRejectOrderCommandHandler(uowFactory OrderUoWFactory) AdminRejectOrderCommandHandler {
	return AdminRejectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the admin rejection command.
// The order moves from "in-process-awaiting-admin" to "admin-rejected" with
// a rejection stamp and stays on record. Returns the resulting status.
func (h *AdminRejectOrderCommandHandler) Handle(ctx context.Context, cmd AdminRejectOrderCommand) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, err
	}

	if err := services.NewTransitionPolicy().Authorize(cmd.Actor(), services.TransitionAdminRejectOrder); err != nil {
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

	if err = aggregate.AdminReject(cmd.Actor().ID(), cmd.Notes(), time.Now().UTC()); err != nil {
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
