package commands

import (
	"errors"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrApproveOrderCommandIsNotConstructed = errors.New(
	"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
)

// ApproveOrderCommand represents the key-user approval of a pending order,
// moving it onward to admin verification.
type ApproveOrderCommand struct { //nolint:recvcheck //using for validation
	orderNo kernel.OrderNumber
	caller  actor.Actor
	notes   string

	guard guard.ConstructorGuard
}

// NewApproveOrderCommand creates an approval command for the given order.
func NewApproveOrderCommand(orderNo kernel.OrderNumber, caller actor.Actor, notes string) (ApproveOrderCommand, error) {
	command := ApproveOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(command.setOrderNo(orderNo), command.setCaller(caller)); err != nil {
		return ApproveOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}

// OrderNo returns the number of the order being approved.
func (c ApproveOrderCommand) OrderNo() kernel.OrderNumber {
	return c.orderNo
}

// Actor returns the approving key user.
func (c ApproveOrderCommand) Actor() actor.Actor {
	return c.caller
}

// Notes returns the approver's free-form notes for the approval stamp.
func (c ApproveOrderCommand) Notes() string {
	return c.notes
}

func (c *ApproveOrderCommand) setOrderNo(orderNo kernel.OrderNumber) error {
	if err := orderNo.Validate(); err != nil {
		return err
	}

	c.orderNo = orderNo
	return nil
}

func (c *ApproveOrderCommand) setCaller(caller actor.Actor) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
