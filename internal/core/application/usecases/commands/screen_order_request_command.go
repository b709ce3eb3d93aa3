package commands

import (
	"errors"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrScreenOrderRequestCommandIsNotConstructed = errors.New(
	"ScreenOrderRequestCommand must be created via NewScreenOrderRequestCommand constructor",
)

// ScreenOrderRequestCommand represents the key-user screening decision on a
// submitted order request: accept it into the pending workflow or decline it
// terminally. Either way the decision is stamped with the screener and notes.
type ScreenOrderRequestCommand struct { //nolint:recvcheck //using for validation
	orderNo kernel.OrderNumber
	caller  actor.Actor
	accept  bool
	notes   string

	guard guard.ConstructorGuard
}

// NewScreenOrderRequestCommand creates a screening command for the given
// order request. accept true moves the request to pending; false declines it.
func NewScreenOrderRequestCommand(
	orderNo kernel.OrderNumber,
	caller actor.Actor,
	accept bool,
	notes string,
) (ScreenOrderRequestCommand, error) {
	command := ScreenOrderRequestCommand{
		accept: accept,
		notes:  notes,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(command.setOrderNo(orderNo), command.setCaller(caller)); err != nil {
		return ScreenOrderRequestCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ScreenOrderRequestCommand) Validate() error {
	return c.guard.Validate(ErrScreenOrderRequestCommandIsNotConstructed)
}

// OrderNo returns the number of the order request being screened.
func (c ScreenOrderRequestCommand) OrderNo() kernel.OrderNumber {
	return c.orderNo
}

// Actor returns the screening key user.
func (c ScreenOrderRequestCommand) Actor() actor.Actor {
	return c.caller
}

// Accept reports whether the request is accepted into the workflow.
func (c ScreenOrderRequestCommand) Accept() bool {
	return c.accept
}

// Notes returns the screener's free-form notes for the decision stamp.
func (c ScreenOrderRequestCommand) Notes() string {
	return c.notes
}

func (c *ScreenOrderRequestCommand) setOrderNo(orderNo kernel.OrderNumber) error {
	if err := orderNo.Validate(); err != nil {
		return err
	}

	c.orderNo = orderNo
	return nil
}

func (c *ScreenOrderRequestCommand) setCaller(caller actor.Actor) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
