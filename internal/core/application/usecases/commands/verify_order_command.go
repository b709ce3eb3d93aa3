package commands

import (
	"errors"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrVerifyOrderCommandIsNotConstructed = errors.New(
	"VerifyOrderCommand must be created via NewVerifyOrderCommand constructor",
)

// VerifyOrderCommand represents the admin verification of an approved order,
// clearing it for craftsman assignment.
type VerifyOrderCommand struct { //nolint:recvcheck //using for validation
	orderNo kernel.OrderNumber
	caller  actor.Actor
	notes   string

	guard guard.ConstructorGuard
}

// NewVerifyOrderCommand creates a verification command for the given order.
func NewVerifyOrderCommand(orderNo kernel.OrderNumber, caller actor.Actor, notes string) (VerifyOrderCommand, error) {
	command := VerifyOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(command.setOrderNo(orderNo), command.setCaller(caller)); err != nil {
		return VerifyOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyOrderCommand) Validate() error {
	return c.guard.Validate(ErrVerifyOrderCommandIsNotConstructed)
}

// OrderNo returns the number of the order being verified.
func (c VerifyOrderCommand) OrderNo() kernel.OrderNumber {
	return c.orderNo
}

// Actor returns the verifying admin.
func (c VerifyOrderCommand) Actor() actor.Actor {
	return c.caller
}

// Notes returns the admin's free-form notes for the verification stamp.
func (c VerifyOrderCommand) Notes() string {
	return c.notes
}

func (c *VerifyOrderCommand) setOrderNo(orderNo kernel.OrderNumber) error {
	if err := orderNo.Validate(); err != nil {
		return err
	}

	c.orderNo = orderNo
	return nil
}

func (c *VerifyOrderCommand) setCaller(caller actor.Actor) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
