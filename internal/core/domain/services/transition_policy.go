package services

import (
	"fmt"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/pkg/errs"
)

// Transition identifies a role-gated workflow operation on an order or on
// the craftsman directory. It is the column key of the policy table.
type Transition int

const (
	// TransitionUnknown represents an invalid or undefined transition.
	TransitionUnknown Transition = iota

	// TransitionCreateOrder places a new order directly into the workflow.
	TransitionCreateOrder

	// TransitionSubmitRequest places a new order request for screening.
	TransitionSubmitRequest

	// TransitionScreenRequest accepts or declines a screened request.
	TransitionScreenRequest

	// TransitionApproveOrder records the key-user approval of a pending order.
	TransitionApproveOrder

	// TransitionRejectOrder removes a still-pending order entirely.
	TransitionRejectOrder

	// TransitionVerifyOrder records the admin verification.
	TransitionVerifyOrder

	// TransitionAdminRejectOrder records the admin rejection.
	TransitionAdminRejectOrder

	// TransitionAssignCraftsman hands an order to a craftsman.
	TransitionAssignCraftsman

	// TransitionAcceptAssignment records the craftsman taking the order on.
	TransitionAcceptAssignment

	// TransitionRejectAssignment records the craftsman refusing the order.
	TransitionRejectAssignment

	// TransitionCompleteOrder records the craftsman reporting the work done.
	TransitionCompleteOrder

	// TransitionApproveCompletion records the admin sign-off on completion.
	TransitionApproveCompletion

	// TransitionRegisterCraftsman appends a new craftsman directory entry.
	TransitionRegisterCraftsman
)

// getTransitionStrings returns a map of Transition values to their string
// representations. All transitions are included for string conversion.
func getTransitionStrings() map[Transition]string {
	return map[Transition]string{
		TransitionUnknown:           "unknown",
		TransitionCreateOrder:       "create order",
		TransitionSubmitRequest:     "submit order request",
		TransitionScreenRequest:     "screen order request",
		TransitionApproveOrder:      "approve order",
		TransitionRejectOrder:       "reject order",
		TransitionVerifyOrder:       "verify order",
		TransitionAdminRejectOrder:  "admin reject order",
		TransitionAssignCraftsman:   "assign craftsman",
		TransitionAcceptAssignment:  "accept assignment",
		TransitionRejectAssignment:  "reject assignment",
		TransitionCompleteOrder:     "complete order",
		TransitionApproveCompletion: "approve completion",
		TransitionRegisterCraftsman: "register craftsman",
	}
}

// getTransitionRoles returns the policy table: for every transition, the
// roles allowed to trigger it. A role absent from a transition's list is
// forbidden, no matter how elevated it is otherwise.
//
// Craftsman ownership (the acting craftsman must be the assigned one) is
// deliberately not part of this table; it needs order state and lives in
// the order aggregate.
func getTransitionRoles() map[Transition][]actor.Role {
	return map[Transition][]actor.Role{
		TransitionCreateOrder:       {actor.RoleUser},
		TransitionSubmitRequest:     {actor.RoleUser},
		TransitionScreenRequest:     {actor.RoleKeyUser},
		TransitionApproveOrder:      {actor.RoleKeyUser},
		TransitionRejectOrder:       {actor.RoleKeyUser},
		TransitionVerifyOrder:       {actor.RoleAdmin},
		TransitionAdminRejectOrder:  {actor.RoleAdmin},
		TransitionAssignCraftsman:   {actor.RoleAdmin, actor.RoleSuperAdmin},
		TransitionAcceptAssignment:  {actor.RoleCraftsman},
		TransitionRejectAssignment:  {actor.RoleCraftsman},
		TransitionCompleteOrder:     {actor.RoleCraftsman},
		TransitionApproveCompletion: {actor.RoleAdmin, actor.RoleSuperAdmin},
		TransitionRegisterCraftsman: {actor.RoleAdmin, actor.RoleSuperAdmin},
	}
}

// Validate checks if the Transition value is valid.
func (t Transition) Validate() error {
	if _, ok := getTransitionRoles()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"transition is invalid",
			fmt.Errorf("%d is not a valid transition", t),
		)
	}
	return nil
}

// String returns the human-readable name of the transition, e.g. "verify order".
// It is used verbatim in Forbidden errors and log lines.
func (t Transition) String() string {
	if str, ok := getTransitionStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// TransitionPolicy is the domain service answering a single question: may an
// actor with this role trigger this transition? Every mutating handler
// consults it before any order state is read, so an unauthorized caller
// learns nothing about the order, not even whether it exists.
//
// The policy is a pure table lookup. It carries no state and is safe for
// concurrent use.
//
// Example usage:
//
//	policy := services.NewTransitionPolicy()
//	if err := policy.Authorize(caller, services.TransitionVerifyOrder); err != nil {
//	    // Forbidden: the caller's role may not verify orders
//	    return err
//	}
type TransitionPolicy struct{}

// NewTransitionPolicy creates a new TransitionPolicy instance.
func NewTransitionPolicy() TransitionPolicy {
	return TransitionPolicy{}
}

// Authorize checks the policy table for the actor's role and the requested
// transition.
//
// Parameters:
//   - caller: The acting party (must be a valid, constructed Actor)
//   - transition: The workflow operation being attempted
//
// Returns:
//   - nil if the role may trigger the transition
//   - error if the actor or transition is invalid, or the role is not in the
//     transition's allow list (Forbidden)
func (p TransitionPolicy) Authorize(caller actor.Actor, transition Transition) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	if err := transition.Validate(); err != nil {
		return err
	}

	for _, role := range getTransitionRoles()[transition] {
		if caller.Role() == role {
			return nil
		}
	}

	return errs.NewForbiddenError(caller.Role().String(), transition.String())
}
