package commands

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrSubmitOrderRequestCommandIsNotConstructed = errors.New(
	"SubmitOrderRequestCommand must be created via NewSubmitOrderRequestCommand constructor",
)

// SubmitOrderRequestCommand represents a request to place a new order that
// must pass key-user screening before entering the pending workflow. It
// carries the same payload as CreateOrderCommand; only the entry status
// of the resulting order differs.
type SubmitOrderRequestCommand struct { //nolint:recvcheck //using for validation
	caller      actor.Actor
	details     order.Details
	orderDate   time.Time
	dueDate     *time.Time
	partnerCode *kernel.PartnerCode

	guard guard.ConstructorGuard
}

// NewSubmitOrderRequestCommand creates a command to submit an order request.
// The caller and details must be constructed values; the order date is
// required. Due date and partner code are optional.
func NewSubmitOrderRequestCommand(
	caller actor.Actor,
	details order.Details,
	orderDate time.Time,
	dueDate *time.Time,
	partnerCode *kernel.PartnerCode,
) (SubmitOrderRequestCommand, error) {
	command := SubmitOrderRequestCommand{
		dueDate: dueDate,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setDetails(details),
		command.setOrderDate(orderDate),
		command.setPartnerCode(partnerCode),
	); err != nil {
		return SubmitOrderRequestCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitOrderRequestCommandIsNotConstructed if validation fails.
func (c SubmitOrderRequestCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderRequestCommandIsNotConstructed)
}

// Actor returns the acting party submitting the request.
func (c SubmitOrderRequestCommand) Actor() actor.Actor {
	return c.caller
}

// Details returns the jewelry item description for the request.
func (c SubmitOrderRequestCommand) Details() order.Details {
	return c.details
}

// OrderDate returns the date the request was placed.
func (c SubmitOrderRequestCommand) OrderDate() time.Time {
	return c.orderDate
}

// DueDate returns the requested delivery date, or nil if none was given.
func (c SubmitOrderRequestCommand) DueDate() *time.Time {
	return c.dueDate
}

// PartnerCode returns the creator's partner code, or nil if not yet known.
func (c SubmitOrderRequestCommand) PartnerCode() *kernel.PartnerCode {
	return c.partnerCode
}

func (c *SubmitOrderRequestCommand) setCaller(caller actor.Actor) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *SubmitOrderRequestCommand) setDetails(details order.Details) error {
	if err := details.Validate(); err != nil {
		return err
	}

	c.details = details
	return nil
}

func (c *SubmitOrderRequestCommand) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("orderDate")
	}

	c.orderDate = orderDate
	return nil
}

func (c *SubmitOrderRequestCommand) setPartnerCode(partnerCode *kernel.PartnerCode) error {
	if partnerCode != nil {
		if err := partnerCode.Validate(); err != nil {
			return err
		}
	}

	c.partnerCode = partnerCode
	return nil
}
