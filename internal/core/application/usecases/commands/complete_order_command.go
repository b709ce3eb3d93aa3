package commands

import (
	"errors"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents the assigned craftsman reporting the work
// done. Where the order lands depends on whether the craftsman had formally
// accepted the assignment first.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderNo kernel.OrderNumber
	caller  actor.Actor

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a completion command for the given order.
func NewCompleteOrderCommand(orderNo kernel.OrderNumber, caller actor.Actor) (CompleteOrderCommand, error) {
	command := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(command.setOrderNo(orderNo), command.setCaller(caller)); err != nil {
		return CompleteOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderNo returns the number of the order being completed.
func (c CompleteOrderCommand) OrderNo() kernel.OrderNumber {
	return c.orderNo
}

// Actor returns the completing craftsman.
func (c CompleteOrderCommand) Actor() actor.Actor {
	return c.caller
}

func (c *CompleteOrderCommand) setOrderNo(orderNo kernel.OrderNumber) error {
	if err := orderNo.Validate(); err != nil {
		return err
	}

	c.orderNo = orderNo
	return nil
}

func (c *CompleteOrderCommand) setCaller(caller actor.Actor) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
