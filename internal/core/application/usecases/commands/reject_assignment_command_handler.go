package commands

import (
	"context"
	"errors"
	"time"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/services"
	"atelier/internal/pkg/errs"
)

// RejectAssignmentCommandHandler records a craftsman's refusal and, in the
// same transaction, tries to hand the order to the next eligible craftsman.
// Rejection, history append, and reassignment commit or roll back together.
//
// Example:
//
//	handler := NewRejectAssignmentCommandHandler(uowFactory)
//	cmd, _ := NewRejectAssignmentCommand(orderNo, craftsmanActor)
//	status, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if status == order.Rejected {
//	    log.Println("No eligible craftsman left, manual assignment needed")
//	}
type RejectAssignmentCommandHandler struct {
	uowFactory UoWFactory
}

// NewRejectAssignmentCommandHandler creates a handler for assignment refusal.
// Requires a UoWFactory for coordinating updates across both repositories.
func NewRejectAssignmentCommandHandler(uowFactory UoWFactory) RejectAssignmentCommandHandler {
	return RejectAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the refusal command.
// The refusing craftsman joins the order's rejection history, then the
// directory is asked for the first craftsman whose partner code has not
// rejected this order. If one is found the order is re-assigned to them
// with its due date retained; otherwise it stays "rejected" with no
// craftsman. Returns the resulting status.
func (h RejectAssignmentCommandHandler) Handle(ctx context.Context, cmd RejectAssignmentCommand) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, err
	}

	if err := services.NewTransitionPolicy().Authorize(cmd.Actor(), services.TransitionRejectAssignment); err != nil {
		return order.Unknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	craftsmanRepo := uow.CraftsmanRepository()
	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetByNumber(ctx, cmd.OrderNo())
	if err != nil {
		return order.Unknown, err
	}

	rejecter, err := craftsmanRepo.Get(ctx, cmd.Actor().ID())
	if err != nil {
		return order.Unknown, err
	}

	if err = aggregate.RejectAssignment(cmd.Actor().ID(), rejecter.Code(), time.Now().UTC()); err != nil {
		return order.Unknown, err
	}

	candidate, err := craftsmanRepo.FindFirstByRoleExcluding(ctx, actor.RoleCraftsman, aggregate.ExcludedPartnerCodes())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// Nobody left to hand the order to; it stays rejected.
	case err != nil:
		return order.Unknown, err
	default:
		if err = aggregate.AssignCraftsman(candidate, nil); err != nil {
			return order.Unknown, err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return order.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Unknown, err
	}

	return aggregate.Status(), nil
}
