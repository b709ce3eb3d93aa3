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

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a new order directly in
// the pending state, skipping the screening step. The order number is
// allocated by the handler, not supplied by the caller.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(caller, details, orderDate, &dueDate, &code)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderNo, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created and awaiting key-user approval", orderNo)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	caller      actor.Actor
	details     order.Details
	orderDate   time.Time
	dueDate     *time.Time
	partnerCode *kernel.PartnerCode

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// The caller and details must be constructed values; the order date is
// required. Due date and partner code are optional.
func NewCreateOrderCommand(
	caller actor.Actor,
	details order.Details,
	orderDate time.Time,
	dueDate *time.Time,
	partnerCode *kernel.PartnerCode,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		dueDate: dueDate,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setDetails(details),
		command.setOrderDate(orderDate),
		command.setPartnerCode(partnerCode),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the acting party creating the order.
func (c CreateOrderCommand) Actor() actor.Actor {
	return c.caller
}

// Details returns the jewelry item description for the order.
func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

// OrderDate returns the date the order was placed.
func (c CreateOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

// DueDate returns the requested delivery date, or nil if none was given.
func (c CreateOrderCommand) DueDate() *time.Time {
	return c.dueDate
}

// PartnerCode returns the creator's partner code, or nil if not yet known.
func (c CreateOrderCommand) PartnerCode() *kernel.PartnerCode {
	return c.partnerCode
}

func (c *CreateOrderCommand) setCaller(caller actor.Actor) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *CreateOrderCommand) setDetails(details order.Details) error {
	if err := details.Validate(); err != nil {
		return err
	}

	c.details = details
	return nil
}

func (c *CreateOrderCommand) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("orderDate")
	}

	c.orderDate = orderDate
	return nil
}

func (c *CreateOrderCommand) setPartnerCode(partnerCode *kernel.PartnerCode) error {
	if partnerCode != nil {
		if err := partnerCode.Validate(); err != nil {
			return err
		}
	}

	c.partnerCode = partnerCode
	return nil
}
