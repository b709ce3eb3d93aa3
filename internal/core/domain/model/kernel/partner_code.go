package kernel

import (
	"fmt"
	"strings"

	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

// ErrPartnerCodeIsNotConstructed is returned when attempting to use an improperly
// initialized PartnerCode. Partner codes must be created via NewPartnerCode.
var ErrPartnerCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"partner code must be created via NewPartnerCode")

// PartnerCode identifies a business partner in the directory, e.g. "GLD".
// It is the short prefix of the combined "CODE-Business Name" form used on the
// wire; because '-' separates the code from the name there, the code itself
// must never contain one.
//
// PartnerCode is an immutable value object; the zero value is invalid and will
// fail validation - use NewPartnerCode to create instances.
//
// Example:
//
//	code, err := kernel.NewPartnerCode("GLD")
//	if err != nil {
//	    // handle error
//	}
type PartnerCode struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewPartnerCode creates a PartnerCode from its string representation.
// Surrounding whitespace is trimmed. The remaining value must be non-empty
// and must not contain the '-' separator. Returns a validation error otherwise.
//
// Example:
//
//	code, err := kernel.NewPartnerCode("GLD")
//	if err != nil {
//	    return fmt.Errorf("invalid partner code: %w", err)
//	}
func NewPartnerCode(value string) (PartnerCode, error) {
	code := PartnerCode{
		guard: guard.NewConstructorGuard(),
	}

	if err := code.setValue(value); err != nil {
		return PartnerCode{}, err
	}

	return code, nil
}

// Validate checks if the PartnerCode was properly constructed using the constructor.
// The zero value is invalid and will fail this validation.
func (c PartnerCode) Validate() error {
	return c.guard.Validate(ErrPartnerCodeIsNotConstructed)
}

// String returns the raw code, e.g. "GLD".
// This method implements the fmt.Stringer interface.
func (c PartnerCode) String() string {
	return c.value
}

// IsEqual compares two partner codes for equality of their string values.
// The comparison is case-sensitive, matching how codes are stored in the directory.
func (c PartnerCode) IsEqual(other PartnerCode) bool {
	return c.value == other.value
}

// setValue sets the underlying value with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (c *PartnerCode) setValue(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError("partnerCode")
	}
	if strings.Contains(value, "-") {
		return errs.NewValueIsInvalidErrorWithCause("partnerCode",
			fmt.Errorf("%q must not contain the '-' separator", value))
	}

	c.value = value
	return nil
}
