package commands

import (
	"errors"
	"strings"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrRegisterCraftsmanCommandIsNotConstructed = errors.New(
	"RegisterCraftsmanCommand must be created via NewRegisterCraftsmanCommand constructor",
)

// RegisterCraftsmanCommand represents an admin appending a new craftsman
// entry to the directory.
type RegisterCraftsmanCommand struct { //nolint:recvcheck //using for validation
	caller       actor.Actor
	code         kernel.PartnerCode
	businessName string

	guard guard.ConstructorGuard
}

// NewRegisterCraftsmanCommand creates a registration command for a new
// directory entry with the given partner code and business name.
func NewRegisterCraftsmanCommand(caller actor.Actor, code kernel.PartnerCode, businessName string) (RegisterCraftsmanCommand, error) {
	command := RegisterCraftsmanCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setCode(code),
		command.setBusinessName(businessName),
	); err != nil {
		return RegisterCraftsmanCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCraftsmanCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCraftsmanCommandIsNotConstructed)
}

// Actor returns the registering admin.
func (c RegisterCraftsmanCommand) Actor() actor.Actor {
	return c.caller
}

// Code returns the partner code for the new entry.
func (c RegisterCraftsmanCommand) Code() kernel.PartnerCode {
	return c.code
}

// BusinessName returns the business name for the new entry.
func (c RegisterCraftsmanCommand) BusinessName() string {
	return c.businessName
}

func (c *RegisterCraftsmanCommand) setCaller(caller actor.Actor) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *RegisterCraftsmanCommand) setCode(code kernel.PartnerCode) error {
	if err := code.Validate(); err != nil {
		return err
	}

	c.code = code
	return nil
}

func (c *RegisterCraftsmanCommand) setBusinessName(businessName string) error {
	businessName = strings.TrimSpace(businessName)
	if businessName == "" {
		return errs.NewValueIsRequiredError("business name")
	}

	c.businessName = businessName
	return nil
}
