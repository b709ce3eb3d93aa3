package kernel

import (
	"fmt"
	"strconv"

	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

const (
	// orderNumberMaxDigits bounds the number so that Next() always fits in an int64.
	orderNumberMaxDigits = 18
	// orderNumberMinWidth is the minimum zero-padding applied by OrderNumberFromCount.
	orderNumberMinWidth = 2
)

// ErrOrderNumberIsNotConstructed is returned when attempting to use an improperly
// initialized OrderNumber. Order numbers must be created using NewOrderNumber,
// FirstOrderNumber, or OrderNumberFromCount to ensure validity.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"order number must be created via NewOrderNumber, FirstOrderNumber, or OrderNumberFromCount")

// OrderNumber is the human-facing identifier of an order: a zero-padded decimal
// string such as "001". It is assigned once at creation and never reassigned.
// OrderNumber is an immutable value object; the zero value is invalid and will
// fail validation - use the constructors to create instances.
//
// Successive numbers are derived with Next(), which preserves the padding width
// of the predecessor and lets the width grow naturally once the numeric value
// outgrows it ("099" -> "100", "999" -> "1000").
//
// Example:
//
//	first := kernel.FirstOrderNumber()      // "001"
//	second, err := first.Next()             // "002"
//	if err != nil {
//	    // handle error
//	}
type OrderNumber struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewOrderNumber creates an OrderNumber from its string representation.
// The value must be a non-empty string of decimal digits no longer than
// 18 characters. Returns a validation error otherwise.
//
// This constructor is typically used when reconstructing orders from
// persistence or when parsing numbers from external input.
//
// Example:
//
//	number, err := kernel.NewOrderNumber("042")
//	if err != nil {
//	    return fmt.Errorf("invalid order number: %w", err)
//	}
func NewOrderNumber(value string) (OrderNumber, error) {
	number := OrderNumber{
		guard: guard.NewConstructorGuard(),
	}

	if err := number.setValue(value); err != nil {
		return OrderNumber{}, err
	}

	return number, nil
}

// FirstOrderNumber returns the number assigned to the very first order: "001".
func FirstOrderNumber() OrderNumber {
	return OrderNumber{
		value: "001",
		guard: guard.NewConstructorGuard(),
	}
}

// OrderNumberFromCount derives an order number from the count of already
// existing orders: the value is count+1, zero-padded to at least two digits
// ("01" for the first order, "100" once the count reaches three digits).
// This is the fallback used when the previous number cannot be parsed.
//
// Example:
//
//	number := kernel.OrderNumberFromCount(7) // "08"
func OrderNumberFromCount(existing int64) OrderNumber {
	return OrderNumber{
		value: fmt.Sprintf("%0*d", orderNumberMinWidth, existing+1),
		guard: guard.NewConstructorGuard(),
	}
}

// Next returns the numeric successor of the order number, zero-padded to at
// least the width of the receiver. The width grows naturally once the value
// needs more digits.
//
// Returns an error if the receiver was not properly constructed.
//
// Example:
//
//	n, _ := kernel.NewOrderNumber("099")
//	next, err := n.Next() // "100"
func (n OrderNumber) Next() (OrderNumber, error) {
	if err := n.Validate(); err != nil {
		return OrderNumber{}, err
	}

	value, err := strconv.ParseInt(n.value, 10, 64)
	if err != nil {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("orderNumber", err)
	}

	return OrderNumber{
		value: fmt.Sprintf("%0*d", len(n.value), value+1),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the OrderNumber was properly constructed using a constructor.
// The zero value is invalid and will fail this validation.
func (n OrderNumber) Validate() error {
	return n.guard.Validate(ErrOrderNumberIsNotConstructed)
}

// String returns the raw zero-padded representation, e.g. "001".
// This method implements the fmt.Stringer interface.
func (n OrderNumber) String() string {
	return n.value
}

// IsEqual compares two order numbers for equality of their string values.
// Padding is significant: "01" and "001" are not equal.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// setValue sets the underlying value with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (n *OrderNumber) setValue(value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	if len(value) > orderNumberMaxDigits {
		return errs.NewValueIsOutOfRangeError("orderNumber length", len(value), 1, orderNumberMaxDigits)
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return errs.NewValueIsInvalidErrorWithCause("orderNumber",
				fmt.Errorf("%q is not a decimal digit string", value))
		}
	}

	n.value = value
	return nil
}
