package commands

import (
	"errors"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrRejectAssignmentCommandIsNotConstructed = errors.New(
	"RejectAssignmentCommand must be created via NewRejectAssignmentCommand constructor",
)

// RejectAssignmentCommand represents the assigned craftsman refusing the
// order. The refusal is recorded in the order's rejection history and the
// handler immediately attempts a reassignment to the next eligible craftsman.
type RejectAssignmentCommand struct { //nolint:recvcheck //using for validation
	orderNo kernel.OrderNumber
	caller  actor.Actor

	guard guard.ConstructorGuard
}

// NewRejectAssignmentCommand creates a refusal command for the given order.
func NewRejectAssignmentCommand(orderNo kernel.OrderNumber, caller actor.Actor) (RejectAssignmentCommand, error) {
	command := RejectAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(command.setOrderNo(orderNo), command.setCaller(caller)); err != nil {
		return RejectAssignmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrRejectAssignmentCommandIsNotConstructed)
}

// OrderNo returns the number of the order being refused.
func (c RejectAssignmentCommand) OrderNo() kernel.OrderNumber {
	return c.orderNo
}

// Actor returns the refusing craftsman.
func (c RejectAssignmentCommand) Actor() actor.Actor {
	return c.caller
}

func (c *RejectAssignmentCommand) setOrderNo(orderNo kernel.OrderNumber) error {
	if err := orderNo.Validate(); err != nil {
		return err
	}

	c.orderNo = orderNo
	return nil
}

func (c *RejectAssignmentCommand) setCaller(caller actor.Actor) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
