package order

import (
	"errors"
	"strings"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

// maxStampNotesLength caps the free-text notes carried by an audit stamp.
const maxStampNotesLength = 512

var (
	// ErrStampIsNotConstructed is returned when a Stamp was not created
	// through the NewStamp factory method.
	ErrStampIsNotConstructed = errs.NewValueIsRequiredError("stamp must be created via NewStamp")
)

// Stamp is an audit record of a single workflow step: who performed it,
// when, and an optional note such as a rejection reason.
//
// Stamps are immutable. An order accumulates at most one stamp per
// workflow step; repeating a step is an invalid transition, not an
// overwrite.
//
//nolint:recvcheck // pointer receivers on private setters are used for construction-time validation
type Stamp struct {
	// by identifies the actor who performed the step
	by kernel.UUID

	// notes is optional free text attached to the step
	notes string

	// at is when the step happened
	at time.Time

	// guard ensures the value object was created via NewStamp
	guard guard.ConstructorGuard
}

// NewStamp creates a validated audit stamp.
//
// Parameters:
//   - by: Actor who performed the step (must be a valid UUID)
//   - notes: Optional free text, at most 512 characters after trimming
//   - stampedAt: When the step happened (must not be the zero time)
//
// Returns:
//   - Stamp: The created stamp if all validations pass
//   - error: Aggregated validation errors if any parameter is invalid
func NewStamp(by kernel.UUID, notes string, stampedAt time.Time) (Stamp, error) {
	stamp := Stamp{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(stamp.setBy(by), stamp.setNotes(notes), stamp.setAt(stampedAt)); err != nil {
		return Stamp{}, err
	}

	return stamp, nil
}

// Validate ensures the Stamp was properly constructed through NewStamp.
func (s Stamp) Validate() error {
	return s.guard.Validate(ErrStampIsNotConstructed)
}

// By returns the actor who performed the step.
func (s Stamp) By() kernel.UUID {
	return s.by
}

// Notes returns the free text attached to the step. May be empty.
func (s Stamp) Notes() string {
	return s.notes
}

// At returns when the step happened.
func (s Stamp) At() time.Time {
	return s.at
}

// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, for the same construction-time validation reason as the
// other value objects in this package.
func (s *Stamp) setBy(by kernel.UUID) error {
	if err := by.Validate(); err != nil {
		return err
	}

	s.by = by
	return nil
}

func (s *Stamp) setNotes(notes string) error {
	notes = strings.TrimSpace(notes)
	if len(notes) > maxStampNotesLength {
		return errs.NewValueIsOutOfRangeError("notes length", len(notes), 0, maxStampNotesLength)
	}

	s.notes = notes
	return nil
}

func (s *Stamp) setAt(stampedAt time.Time) error {
	if stampedAt.IsZero() {
		return errs.NewValueIsRequiredError("stampedAt")
	}

	s.at = stampedAt
	return nil
}

// Stamps bundles the audit stamps an order collects over its lifetime.
// A nil entry means the corresponding step has not happened. The same
// bundle is used both to read stamps off an order and to restore an
// order from persistence.
type Stamps struct {
	// Screening records the key-user screening decision, accept or decline
	Screening *Stamp

	// Approval records the key-user approval
	Approval *Stamp

	// Verification records the admin verification
	Verification *Stamp

	// AdminRejection records the admin rejection during verification
	AdminRejection *Stamp

	// CompletionApproval records the admin sign-off on reported completion
	CompletionApproval *Stamp
}

// Validate checks every present stamp in the bundle.
func (s Stamps) Validate() error {
	return errors.Join(
		validateStamp(s.Screening),
		validateStamp(s.Approval),
		validateStamp(s.Verification),
		validateStamp(s.AdminRejection),
		validateStamp(s.CompletionApproval),
	)
}

func validateStamp(stamp *Stamp) error {
	if stamp == nil {
		return nil
	}
	return stamp.Validate()
}
