package commands

import (
	"errors"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand represents the key-user rejection of a still-pending
// order. Rejection at this step deletes the order outright rather than
// archiving it, so the command carries no notes.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderNo kernel.OrderNumber
	caller  actor.Actor

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a rejection command for the given order.
func NewRejectOrderCommand(orderNo kernel.OrderNumber, caller actor.Actor) (RejectOrderCommand, error) {
	command := RejectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(command.setOrderNo(orderNo), command.setCaller(caller)); err != nil {
		return RejectOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// OrderNo returns the number of the order being rejected.
func (c RejectOrderCommand) OrderNo() kernel.OrderNumber {
	return c.orderNo
}

// Actor returns the rejecting key user.
func (c RejectOrderCommand) Actor() actor.Actor {
	return c.caller
}

func (c *RejectOrderCommand) setOrderNo(orderNo kernel.OrderNumber) error {
	if err := orderNo.Validate(); err != nil {
		return err
	}

	c.orderNo = orderNo
	return nil
}

func (c *RejectOrderCommand) setCaller(caller actor.Actor) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
