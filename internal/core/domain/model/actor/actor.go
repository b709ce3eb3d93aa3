package actor

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when attempting to use an improperly
// initialized Actor. Actors must be created via NewActor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError(
	"actor must be created via NewActor")

// Actor identifies the caller of a workflow operation: who they are and which
// role they act in. Authentication is external; the actor arrives with each
// request and is only trusted with what the policy table grants its role.
//
// For craftsman actors the id is the craftsman's directory entry id, which is
// what ownership checks compare against the order's assigned craftsman.
//
// Actor is an immutable value object; the zero value is invalid and will fail
// validation - use NewActor to create instances.
type Actor struct { //nolint:recvcheck //using for validation
	id    kernel.UUID
	role  Role
	guard guard.ConstructorGuard
}

// NewActor creates an Actor from an id and a role.
// Both must be valid; errors from the individual checks are joined.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	actor := Actor{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(actor.setID(id), actor.setRole(role)); err != nil {
		return Actor{}, err
	}

	return actor, nil
}

// Validate checks if the Actor was properly constructed using the constructor.
// The zero value is invalid and will fail this validation.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's identity.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's workflow role.
func (a Actor) Role() Role {
	return a.role
}

// IsEqual compares two actors by identity and role.
func (a Actor) IsEqual(other Actor) bool {
	return a.id.IsEqual(other.id) && a.role == other.role
}

// setID sets the id with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (a *Actor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	a.id = id
	return nil
}

// setRole sets the role with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	a.role = role
	return nil
}
