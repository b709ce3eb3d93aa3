package commands

import (
	"errors"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrAcceptAssignmentCommandIsNotConstructed = errors.New(
	"AcceptAssignmentCommand must be created via NewAcceptAssignmentCommand constructor",
)

// AcceptAssignmentCommand represents the assigned craftsman taking the order
// on. The acting craftsman is identified by the actor id; the aggregate
// verifies it against the order's assignment.
type AcceptAssignmentCommand struct { //nolint:recvcheck //using for validation
	orderNo kernel.OrderNumber
	caller  actor.Actor

	guard guard.ConstructorGuard
}

// NewAcceptAssignmentCommand creates an acceptance command for the given order.
func NewAcceptAssignmentCommand(orderNo kernel.OrderNumber, caller actor.Actor) (AcceptAssignmentCommand, error) {
	command := AcceptAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(command.setOrderNo(orderNo), command.setCaller(caller)); err != nil {
		return AcceptAssignmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrAcceptAssignmentCommandIsNotConstructed)
}

// OrderNo returns the number of the order being accepted.
func (c AcceptAssignmentCommand) OrderNo() kernel.OrderNumber {
	return c.orderNo
}

// Actor returns the accepting craftsman.
func (c AcceptAssignmentCommand) Actor() actor.Actor {
	return c.caller
}

func (c *AcceptAssignmentCommand) setOrderNo(orderNo kernel.OrderNumber) error {
	if err := orderNo.Validate(); err != nil {
		return err
	}

	c.orderNo = orderNo
	return nil
}

func (c *AcceptAssignmentCommand) setCaller(caller actor.Actor) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
