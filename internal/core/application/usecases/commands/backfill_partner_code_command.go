package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrBackfillPartnerCodeCommandIsNotConstructed = errors.New(
	"BackfillPartnerCodeCommand must be created via NewBackfillPartnerCodeCommand constructor",
)

// BackfillPartnerCodeCommand stamps a partner code onto every order a given
// creator placed before their code was known. It is a provisioning step run
// when the creator's directory record is completed, so it carries no acting
// role to authorize.
type BackfillPartnerCodeCommand struct { //nolint:recvcheck //using for validation
	createdBy   kernel.UUID
	partnerCode kernel.PartnerCode

	guard guard.ConstructorGuard
}

// NewBackfillPartnerCodeCommand creates a backfill command for all orders
// created by the given actor.
func NewBackfillPartnerCodeCommand(createdBy kernel.UUID, partnerCode kernel.PartnerCode) (BackfillPartnerCodeCommand, error) {
	command := BackfillPartnerCodeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCreatedBy(createdBy),
		command.setPartnerCode(partnerCode),
	); err != nil {
		return BackfillPartnerCodeCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c BackfillPartnerCodeCommand) Validate() error {
	return c.guard.Validate(ErrBackfillPartnerCodeCommandIsNotConstructed)
}

// CreatedBy returns the creator whose orders receive the code.
func (c BackfillPartnerCodeCommand) CreatedBy() kernel.UUID {
	return c.createdBy
}

// PartnerCode returns the code to stamp onto the orders.
func (c BackfillPartnerCodeCommand) PartnerCode() kernel.PartnerCode {
	return c.partnerCode
}

func (c *BackfillPartnerCodeCommand) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}

	c.createdBy = createdBy
	return nil
}

func (c *BackfillPartnerCodeCommand) setPartnerCode(partnerCode kernel.PartnerCode) error {
	if err := partnerCode.Validate(); err != nil {
		return err
	}

	c.partnerCode = partnerCode
	return nil
}
