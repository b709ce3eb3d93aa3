package commands

import (
	"context"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/services"
)

// AssignCraftsmanCommandHandler hands an order to a craftsman looked up in
// the directory by partner code and business name. Order and directory are
// read and the order updated within a single transaction.
//
// Example:
//
//	handler := NewAssignCraftsmanCommandHandler(uowFactory)
//	cmd, _ := NewAssignCraftsmanCommand(orderNo, admin, "GLD-Golden Hands", nil)
//	status, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("No such craftsman in the directory")
//	case errors.Is(err, order.ErrCraftsmanRejectedThisOrder):
//	    log.Println("Craftsman already rejected this order")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Printf("Order now %s", status)
//	}
type AssignCraftsmanCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignCraftsmanCommandHandler creates a handler for craftsman assignment.
// Requires a UoWFactory for coordinating reads across both repositories.
func NewAssignCraftsmanCommandHandler(uowFactory UoWFactory) AssignCraftsmanCommandHandler {
	return AssignCraftsmanCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
// Looks up the craftsman, lets the aggregate enforce the rejection-history
// exclusion, and moves the order to "assigned". A due date in the command
// replaces the order's current one; otherwise it is retained.
// Returns the resulting status.
func (h AssignCraftsmanCommandHandler) Handle(ctx context.Context, cmd AssignCraftsmanCommand) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, err
	}

	if err := services.NewTransitionPolicy().Authorize(cmd.Actor(), services.TransitionAssignCraftsman); err != nil {
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

	assignee, err := craftsmanRepo.FindByCodeAndName(ctx, cmd.Code(), cmd.BusinessName())
	if err != nil {
		return order.Unknown, err
	}

	if err = aggregate.AssignCraftsman(assignee, cmd.DueDate()); err != nil {
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
