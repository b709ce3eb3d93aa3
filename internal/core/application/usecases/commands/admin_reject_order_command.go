package commands

import (
	"errors"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrAdminRejectOrderCommandIsNotConstructed = errors.New(
	"AdminRejectOrderCommand must be created via NewAdminRejectOrderCommand constructor",
)

// AdminRejectOrderCommand represents the admin rejection of an approved
// order. Unlike the key-user rejection this is terminal and archived: the
// order stays on record in "admin-rejected" with a rejection stamp.
type AdminRejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderNo kernel.OrderNumber
	caller  actor.Actor
	notes   string

	guard guard.ConstructorGuard
}

// NewAdminRejectOrderCommand creates an admin rejection command for the given order.
func NewAdminRejectOrderCommand(orderNo kernel.OrderNumber, caller actor.Actor, notes string) (AdminRejectOrderCommand, error) {
	command := AdminRejectOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(command.setOrderNo(orderNo), command.setCaller(caller)); err != nil {
		return AdminRejectOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AdminRejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdminRejectOrderCommandIsNotConstructed)
}

// OrderNo returns the number of the order being rejected.
func (c AdminRejectOrderCommand) OrderNo() kernel.OrderNumber {
	return c.orderNo
}

// Actor returns the rejecting admin.
func (c AdminRejectOrderCommand) Actor() actor.Actor {
	return c.caller
}

// Notes returns the admin's free-form notes for the rejection stamp.
func (c AdminRejectOrderCommand) Notes() string {
	return c.notes
}

func (c *AdminRejectOrderCommand) setOrderNo(orderNo kernel.OrderNumber) error {
	if err := orderNo.Validate(); err != nil {
		return err
	}

	c.orderNo = orderNo
	return nil
}

func (c *AdminRejectOrderCommand) setCaller(caller actor.Actor) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
