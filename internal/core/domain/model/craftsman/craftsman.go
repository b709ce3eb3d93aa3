package craftsman

import (
	"errors"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

// Domain errors for craftsman operations.
var (
	// ErrBusinessNameIsRequired is returned when attempting to create a craftsman without a business name.
	ErrBusinessNameIsRequired = errs.NewValueIsRequiredError("businessName")
	// ErrCraftsmanIsNotConstructed is returned when using an improperly initialized Craftsman.
	ErrCraftsmanIsNotConstructed = errors.New("Craftsman must be created via NewCraftsman constructor")
)

// Craftsman represents a business-partner directory entry that can fulfill
// orders. The workflow references craftsmen by id and partner code; it never
// owns or mutates directory data beyond registering new entries.
//
// Key responsibilities:
//   - Carrying directory identity (ID, partner code, business name)
//   - Carrying the partner's workflow role (normally CRAFTSMAN)
//   - Providing the combined "CODE-Business Name" display form used on the wire
//
// Business rules:
//   - Craftsman must have a valid UUID, a valid partner code, and a non-empty
//     business name
//   - The role must be a valid workflow role
//
// Reassignment exclusion works on partner codes, not entry ids: two directory
// entries sharing a code are the same partner as far as rejections go.
type Craftsman struct {
	// id uniquely identifies the directory entry
	id kernel.UUID
	// code is the partner code, e.g. "GLD"
	code kernel.PartnerCode
	// businessName is the partner's display name
	businessName string
	// role is the partner's workflow role
	role actor.Role
	// guard ensures the craftsman was properly constructed
	guard guard.ConstructorGuard
}

// NewCraftsman creates a new Craftsman directory entry with role CRAFTSMAN.
// This is the only way to register a fresh entry.
//
// Parameters:
//   - id: Unique identifier for the entry (must be valid UUID)
//   - code: Partner code (must be a valid PartnerCode)
//   - businessName: Display name (must be non-empty)
//
// Returns:
//   - *Craftsman: A fully initialized directory entry
//   - error: Validation error if any parameter is invalid (aggregated errors
//     for multiple issues)
func NewCraftsman(id kernel.UUID, code kernel.PartnerCode, businessName string) (*Craftsman, error) {
	craftsman := &Craftsman{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		craftsman.setID(id),
		craftsman.setCode(code),
		craftsman.setBusinessName(businessName),
		craftsman.setRole(actor.RoleCraftsman),
	); err != nil {
		return nil, err
	}

	return craftsman, nil
}

// RestoreCraftsman reconstructs a Craftsman from persistent storage, including
// its persisted role. The restored entry behaves identically to one created
// through NewCraftsman.
func RestoreCraftsman(
	id kernel.UUID,
	code kernel.PartnerCode,
	businessName string,
	role actor.Role,
) (*Craftsman, error) {
	craftsman := &Craftsman{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		craftsman.setID(id),
		craftsman.setCode(code),
		craftsman.setBusinessName(businessName),
		craftsman.setRole(role),
	); err != nil {
		return nil, err
	}

	return craftsman, nil
}

// IsEqual compares two craftsmen for equality based on their unique identifiers.
// Two entries are considered equal if they have the same ID, regardless of
// other attributes.
func (c *Craftsman) IsEqual(other *Craftsman) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate checks if the Craftsman was properly constructed via a constructor.
// The zero value of Craftsman is invalid and will fail this validation.
func (c *Craftsman) Validate() error {
	if c == nil {
		return ErrCraftsmanIsNotConstructed
	}
	return c.guard.Validate(ErrCraftsmanIsNotConstructed)
}

// ID returns the unique identifier of the directory entry.
func (c *Craftsman) ID() kernel.UUID {
	return c.id
}

// Code returns the partner code.
func (c *Craftsman) Code() kernel.PartnerCode {
	return c.code
}

// BusinessName returns the partner's display name.
func (c *Craftsman) BusinessName() string {
	return c.businessName
}

// Role returns the partner's workflow role.
func (c *Craftsman) Role() actor.Role {
	return c.role
}

// DisplayName returns the combined wire form "CODE-Business Name" that
// callers use to pick a craftsman during assignment.
//
// Example:
//
//	craftsman, _ := NewCraftsman(id, code, "Goldsmiths United")
//	craftsman.DisplayName() // "GLD-Goldsmiths United"
func (c *Craftsman) DisplayName() string {
	return c.code.String() + "-" + c.businessName
}

// setID sets the entry's unique identifier with validation.
// This is an internal setter used during construction.
func (c *Craftsman) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

// setCode sets the partner code with validation.
// This is an internal setter used during construction.
func (c *Craftsman) setCode(code kernel.PartnerCode) error {
	if err := code.Validate(); err != nil {
		return err
	}

	c.code = code
	return nil
}

// setBusinessName sets the display name with validation.
// This is an internal setter used during construction.
func (c *Craftsman) setBusinessName(businessName string) error {
	if businessName == "" {
		return ErrBusinessNameIsRequired
	}

	c.businessName = businessName
	return nil
}

// setRole sets the workflow role with validation.
// This is an internal setter used during construction.
func (c *Craftsman) setRole(role actor.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
