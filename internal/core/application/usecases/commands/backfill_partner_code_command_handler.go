package commands

import (
	"context"
)

// BackfillPartnerCodeCommandHandler stamps a partner code onto every order a
// creator placed before their code was known. All orders are updated within
// a single transaction.
type BackfillPartnerCodeCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewBackfillPartnerCodeCommandHandler creates a handler for partner code backfill.
// Requires an OrderUoWFactory for transactional persistence.
func NewBackfillPartnerCodeCommandHandler(uowFactory OrderUoWFactory) BackfillPartnerCodeCommandHandler {
	return BackfillPartnerCodeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the backfill command.
// Only orders without a partner code are touched; codes set at creation are
// never overwritten. Returns the number of orders updated.
func (h *BackfillPartnerCodeCommandHandler) Handle(ctx context.Context, cmd BackfillPartnerCodeCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	orders, err := orderRepo.GetAllByCreatorWithoutPartnerCode(ctx, cmd.CreatedBy())
	if err != nil {
		return 0, err
	}

	for _, aggregate := range orders {
		if err = aggregate.BackfillPartnerCode(cmd.PartnerCode()); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(orders), nil
}
