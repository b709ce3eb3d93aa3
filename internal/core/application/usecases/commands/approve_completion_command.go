package commands

import (
	"errors"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrApproveCompletionCommandIsNotConstructed = errors.New(
	"ApproveCompletionCommand must be created via NewApproveCompletionCommand constructor",
)

// ApproveCompletionCommand represents the admin sign-off on work a craftsman
// reported done, closing the order.
type ApproveCompletionCommand struct { //nolint:recvcheck //using for validation
	orderNo kernel.OrderNumber
	caller  actor.Actor
	notes   string

	guard guard.ConstructorGuard
}

// NewApproveCompletionCommand creates a completion sign-off command for the given order.
func NewApproveCompletionCommand(orderNo kernel.OrderNumber, caller actor.Actor, notes string) (ApproveCompletionCommand, error) {
	command := ApproveCompletionCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(command.setOrderNo(orderNo), command.setCaller(caller)); err != nil {
		return ApproveCompletionCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveCompletionCommand) Validate() error {
	return c.guard.Validate(ErrApproveCompletionCommandIsNotConstructed)
}

// OrderNo returns the number of the order being closed.
func (c ApproveCompletionCommand) OrderNo() kernel.OrderNumber {
	return c.orderNo
}

// Actor returns the signing admin.
func (c ApproveCompletionCommand) Actor() actor.Actor {
	return c.caller
}

// Notes returns the admin's free-form notes for the completion stamp.
func (c ApproveCompletionCommand) Notes() string {
	return c.notes
}

func (c *ApproveCompletionCommand) setOrderNo(orderNo kernel.OrderNumber) error {
	if err := orderNo.Validate(); err != nil {
		return err
	}

	c.orderNo = orderNo
	return nil
}

func (c *ApproveCompletionCommand) setCaller(caller actor.Actor) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
