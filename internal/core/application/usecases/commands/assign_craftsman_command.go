package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrAssignCraftsmanCommandIsNotConstructed = errors.New(
	"AssignCraftsmanCommand must be created via NewAssignCraftsmanCommand constructor",
)

// AssignCraftsmanCommand represents the admin handing an order to a craftsman.
// The craftsman is referenced by the combined "CODE-Name" form used on
// paperwork; the constructor splits it on the first hyphen, so hyphens in
// the business name survive.
type AssignCraftsmanCommand struct { //nolint:recvcheck //using for validation
	orderNo      kernel.OrderNumber
	caller       actor.Actor
	code         kernel.PartnerCode
	businessName string
	dueDate      *time.Time

	guard guard.ConstructorGuard
}

// NewAssignCraftsmanCommand creates an assignment command for the given order.
// craftsmanRef is the combined partner code and business name, e.g.
// "GLD-Golden Hands Atelier". An optional due date overrides the order's
// current one when set.
func NewAssignCraftsmanCommand(
	orderNo kernel.OrderNumber,
	caller actor.Actor,
	craftsmanRef string,
	dueDate *time.Time,
) (AssignCraftsmanCommand, error) {
	command := AssignCraftsmanCommand{
		dueDate: dueDate,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderNo(orderNo),
		command.setCaller(caller),
		command.setCraftsmanRef(craftsmanRef),
	); err != nil {
		return AssignCraftsmanCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCraftsmanCommand) Validate() error {
	return c.guard.Validate(ErrAssignCraftsmanCommandIsNotConstructed)
}

// OrderNo returns the number of the order being assigned.
func (c AssignCraftsmanCommand) OrderNo() kernel.OrderNumber {
	return c.orderNo
}

// Actor returns the assigning admin.
func (c AssignCraftsmanCommand) Actor() actor.Actor {
	return c.caller
}

// Code returns the partner code parsed from the craftsman reference.
func (c AssignCraftsmanCommand) Code() kernel.PartnerCode {
	return c.code
}

// BusinessName returns the business name parsed from the craftsman reference.
func (c AssignCraftsmanCommand) BusinessName() string {
	return c.businessName
}

// DueDate returns the due date override, or nil to keep the order's current one.
func (c AssignCraftsmanCommand) DueDate() *time.Time {
	return c.dueDate
}

func (c *AssignCraftsmanCommand) setOrderNo(orderNo kernel.OrderNumber) error {
	if err := orderNo.Validate(); err != nil {
		return err
	}

	c.orderNo = orderNo
	return nil
}

func (c *AssignCraftsmanCommand) setCaller(caller actor.Actor) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *AssignCraftsmanCommand) setCraftsmanRef(craftsmanRef string) error {
	codePart, namePart, found := strings.Cut(craftsmanRef, "-")
	if !found {
		return errs.NewValueIsInvalidErrorWithCause("craftsman reference is invalid",
			fmt.Errorf("%q must have the form CODE-Name", craftsmanRef))
	}

	code, err := kernel.NewPartnerCode(codePart)
	if err != nil {
		return err
	}

	businessName := strings.TrimSpace(namePart)
	if businessName == "" {
		return errs.NewValueIsRequiredError("business name")
	}

	c.code = code
	c.businessName = businessName
	return nil
}
