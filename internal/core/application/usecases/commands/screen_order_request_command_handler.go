package commands

import (
	"context"
	"time"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/services"
)

// ScreenOrderRequestCommandHandler applies the key-user screening decision to
// a submitted order request within a single transaction.
type ScreenOrderRequestCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewScreenOrderRequestCommandHandler creates a handler for screening decisions.
// Requires an OrderUoWFactory for transactional persistence.
func NewScreenOrderRequestCommandHandler(uowFactory OrderUoWFactory) ScreenOrderRequestCommandHandler {
	return ScreenOrderRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the screening command.
// Accepting moves the request to "pending"; declining parks it terminally in
// "declined". Returns the resulting status.
func (h *ScreenOrderRequestCommandHandler) Handle(ctx context.Context, cmd ScreenOrderRequestCommand) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, err
	}

	if err := services.NewTransitionPolicy().Authorize(cmd.Actor(), services.TransitionScreenRequest); err != nil {
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

	request, err := orderRepo.GetByNumber(ctx, cmd.OrderNo())
	if err != nil {
		return order.Unknown, err
	}

	screenedAt := time.Now().UTC()
	if cmd.Accept() {
		err = request.AcceptScreening(cmd.Actor().ID(), cmd.Notes(), screenedAt)
	} else {
		err = request.DeclineScreening(cmd.Actor().ID(), cmd.Notes(), screenedAt)
	}
	if err != nil {
		return order.Unknown, err
	}

	if err = orderRepo.Update(ctx, request); err != nil {
		return order.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Unknown, err
	}

	return request.Status(), nil
}
