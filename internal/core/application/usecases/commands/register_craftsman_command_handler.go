package commands

import (
	"context"

	"atelier/internal/core/domain/model/craftsman"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/services"
)

// RegisterCraftsmanCommandHandler appends a new craftsman entry to the
// directory within a single transaction.
type RegisterCraftsmanCommandHandler struct {
	uowFactory CraftsmanUoWFactory
}

// NewRegisterCraftsmanCommandHandler creates a handler for directory registration.
// Requires a CraftsmanUoWFactory for transactional persistence.
func NewRegisterCraftsmanCommandHandler(uowFactory CraftsmanUoWFactory) RegisterCraftsmanCommandHandler {
	return RegisterCraftsmanCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// The new entry takes the craftsman role and joins the directory at the end
// of the insertion order, which is the order reassignment scans in.
func (h *RegisterCraftsmanCommandHandler) Handle(ctx context.Context, cmd RegisterCraftsmanCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := services.NewTransitionPolicy().Authorize(cmd.Actor(), services.TransitionRegisterCraftsman); err != nil {
		return err
	}

	entry, err := craftsman.NewCraftsman(kernel.NewUUID(), cmd.Code(), cmd.BusinessName())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CraftsmanRepository().Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
