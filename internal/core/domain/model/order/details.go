package order

import (
	"errors"
	"fmt"
	"strings"

	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	// ErrDetailsAreNotConstructed is returned when Details were not created
	// through the NewDetails factory method.
	ErrDetailsAreNotConstructed = errs.NewValueIsRequiredError("order details must be created via NewDetails")
)

// Details is a value object describing the piece a customer ordered.
//
// Details follows these invariants:
//   - Product is required and never blank
//   - Quantity must be positive (greater than 0)
//   - Design, purity, and narration are free text and may be empty
//   - Can only be created through NewDetails constructor
//
// Details are immutable once created. Changing what an order is about means
// building a new Details value, not mutating an existing one.
//
//nolint:recvcheck // pointer receivers on private setters are used for construction-time validation
type Details struct {
	// product names the kind of piece being made, e.g. "ring" or "necklace"
	product string

	// design is an optional free-text design reference
	design string

	// purity is an optional metal purity note, e.g. "22K" or "916"
	purity string

	// narration is optional free-text instructions for the craftsman
	narration string

	// quantity is the number of pieces ordered (must be positive)
	quantity int

	// guard ensures the value object was created via NewDetails
	guard guard.ConstructorGuard
}

// NewDetails creates a validated Details value object.
//
// Parameters:
//   - product: What is being made (required, surrounding whitespace is trimmed)
//   - design: Free-text design reference (optional)
//   - purity: Metal purity note (optional)
//   - narration: Free-text instructions (optional)
//   - quantity: Number of pieces (must be greater than 0)
//
// Returns:
//   - Details: The created value object if all validations pass
//   - error: Aggregated validation errors if any parameter is invalid
//
// Example:
//
//	details, err := order.NewDetails("ring", "floral band", "22K", "engrave initials", 2)
//	if err != nil {
//	    // Handle validation error
//	}
func NewDetails(product string, design string, purity string, narration string, quantity int) (Details, error) {
	details := Details{
		design:    strings.TrimSpace(design),
		purity:    strings.TrimSpace(purity),
		narration: strings.TrimSpace(narration),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(details.setProduct(product), details.setQuantity(quantity)); err != nil {
		return Details{}, err
	}

	return details, nil
}

// Validate ensures the Details value was properly constructed through NewDetails.
//
// Returns:
//   - nil if the value is valid
//   - ErrDetailsAreNotConstructed if the value was not created via NewDetails
func (d Details) Validate() error {
	return d.guard.Validate(ErrDetailsAreNotConstructed)
}

// IsEqual compares two Details values field by field.
// Both values must be properly constructed.
//
// Returns:
//   - bool: true if every field matches
//   - error: validation error if either value was not constructed via NewDetails
func (d Details) IsEqual(other Details) (bool, error) {
	if err := d.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return d.product == other.product &&
		d.design == other.design &&
		d.purity == other.purity &&
		d.narration == other.narration &&
		d.quantity == other.quantity, nil
}

// Product returns the kind of piece being made.
func (d Details) Product() string {
	return d.product
}

// Design returns the free-text design reference. May be empty.
func (d Details) Design() string {
	return d.design
}

// Purity returns the metal purity note. May be empty.
func (d Details) Purity() string {
	return d.purity
}

// Narration returns the free-text instructions. May be empty.
func (d Details) Narration() string {
	return d.narration
}

// Quantity returns the number of pieces ordered.
func (d Details) Quantity() int {
	return d.quantity
}

// Note: We intentionally use a pointer receiver here while other methods use
// value receivers. Although mixing receiver types is generally not recommended,
// in this case we use pointer receivers for these private setters to enable
// self-encapsulated validation of business requirements during object
// construction.
func (d *Details) setProduct(product string) error {
	product = strings.TrimSpace(product)
	if product == "" {
		return errs.NewValueIsRequiredError("product")
	}

	d.product = product
	return nil
}

func (d *Details) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	d.quantity = quantity
	return nil
}
