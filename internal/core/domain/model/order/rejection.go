package order

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	// ErrRejectionIsNotConstructed is returned when a Rejection was not
	// created through the NewRejection factory method.
	ErrRejectionIsNotConstructed = errs.NewValueIsRequiredError("rejection must be created via NewRejection")
)

// Rejection records one craftsman's refusal of an order. The order keeps
// every rejection it has ever received; the collected partner codes form
// the exclusion set that reassignment must never pick from again.
//
// The partner code is captured at rejection time on purpose: directory
// entries can be duplicated or renamed later, and the code is what the
// exclusion works on.
//
//nolint:recvcheck // pointer receivers on private setters are used for construction-time validation
type Rejection struct {
	// craftsmanID identifies the directory entry that rejected the order
	craftsmanID kernel.UUID

	// partnerCode is the rejecting craftsman's partner code at rejection time
	partnerCode kernel.PartnerCode

	// at is when the rejection happened
	at time.Time

	// guard ensures the value object was created via NewRejection
	guard guard.ConstructorGuard
}

// NewRejection creates a validated rejection record.
//
// Parameters:
//   - craftsmanID: Directory entry of the rejecting craftsman (must be a valid UUID)
//   - partnerCode: The craftsman's partner code (must be a valid PartnerCode)
//   - rejectedAt: When the rejection happened (must not be the zero time)
//
// Returns:
//   - Rejection: The created record if all validations pass
//   - error: Aggregated validation errors if any parameter is invalid
func NewRejection(craftsmanID kernel.UUID, partnerCode kernel.PartnerCode, rejectedAt time.Time) (Rejection, error) {
	rejection := Rejection{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rejection.setCraftsmanID(craftsmanID),
		rejection.setPartnerCode(partnerCode),
		rejection.setAt(rejectedAt),
	); err != nil {
		return Rejection{}, err
	}

	return rejection, nil
}

// Validate ensures the Rejection was properly constructed through NewRejection.
func (r Rejection) Validate() error {
	return r.guard.Validate(ErrRejectionIsNotConstructed)
}

// CraftsmanID returns the directory entry of the rejecting craftsman.
func (r Rejection) CraftsmanID() kernel.UUID {
	return r.craftsmanID
}

// PartnerCode returns the rejecting craftsman's partner code.
func (r Rejection) PartnerCode() kernel.PartnerCode {
	return r.partnerCode
}

// At returns when the rejection happened.
func (r Rejection) At() time.Time {
	return r.at
}

// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, for the same construction-time validation reason as the
// other value objects in this package.
func (r *Rejection) setCraftsmanID(craftsmanID kernel.UUID) error {
	if err := craftsmanID.Validate(); err != nil {
		return err
	}

	r.craftsmanID = craftsmanID
	return nil
}

func (r *Rejection) setPartnerCode(partnerCode kernel.PartnerCode) error {
	if err := partnerCode.Validate(); err != nil {
		return err
	}

	r.partnerCode = partnerCode
	return nil
}

func (r *Rejection) setAt(rejectedAt time.Time) error {
	if rejectedAt.IsZero() {
		return errs.NewValueIsRequiredError("rejectedAt")
	}

	r.at = rejectedAt
	return nil
}
