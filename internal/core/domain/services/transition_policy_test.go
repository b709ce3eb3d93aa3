package services_test

import (
	"fmt"
	"testing"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/services"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActor(t *testing.T, role actor.Role) actor.Actor {
	t.Helper()

	caller, err := actor.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)

	return caller
}

func TestTransitionPolicy_Authorize(t *testing.T) {
	policy := services.NewTransitionPolicy()

	t.Run("should allow user to create order", func(t *testing.T) {
		err := policy.Authorize(newActor(t, actor.RoleUser), services.TransitionCreateOrder)

		assert.NoError(t, err)
	})

	t.Run("should allow user to submit order request", func(t *testing.T) {
		err := policy.Authorize(newActor(t, actor.RoleUser), services.TransitionSubmitRequest)

		assert.NoError(t, err)
	})

	t.Run("should allow key user to screen order request", func(t *testing.T) {
		err := policy.Authorize(newActor(t, actor.RoleKeyUser), services.TransitionScreenRequest)

		assert.NoError(t, err)
	})

	t.Run("should allow key user to approve and reject orders", func(t *testing.T) {
		keyUser := newActor(t, actor.RoleKeyUser)

		assert.NoError(t, policy.Authorize(keyUser, services.TransitionApproveOrder))
		assert.NoError(t, policy.Authorize(keyUser, services.TransitionRejectOrder))
	})

	t.Run("should allow admin to verify and admin reject orders", func(t *testing.T) {
		admin := newActor(t, actor.RoleAdmin)

		assert.NoError(t, policy.Authorize(admin, services.TransitionVerifyOrder))
		assert.NoError(t, policy.Authorize(admin, services.TransitionAdminRejectOrder))
	})

	t.Run("should allow admin and super admin to assign craftsmen", func(t *testing.T) {
		assert.NoError(t, policy.Authorize(newActor(t, actor.RoleAdmin), services.TransitionAssignCraftsman))
		assert.NoError(t, policy.Authorize(newActor(t, actor.RoleSuperAdmin), services.TransitionAssignCraftsman))
	})

	t.Run("should allow craftsman to respond to and complete assignments", func(t *testing.T) {
		craftsman := newActor(t, actor.RoleCraftsman)

		assert.NoError(t, policy.Authorize(craftsman, services.TransitionAcceptAssignment))
		assert.NoError(t, policy.Authorize(craftsman, services.TransitionRejectAssignment))
		assert.NoError(t, policy.Authorize(craftsman, services.TransitionCompleteOrder))
	})

	t.Run("should allow admin and super admin to approve completion", func(t *testing.T) {
		assert.NoError(t, policy.Authorize(newActor(t, actor.RoleAdmin), services.TransitionApproveCompletion))
		assert.NoError(t, policy.Authorize(newActor(t, actor.RoleSuperAdmin), services.TransitionApproveCompletion))
	})

	t.Run("should allow admin and super admin to register craftsmen", func(t *testing.T) {
		assert.NoError(t, policy.Authorize(newActor(t, actor.RoleAdmin), services.TransitionRegisterCraftsman))
		assert.NoError(t, policy.Authorize(newActor(t, actor.RoleSuperAdmin), services.TransitionRegisterCraftsman))
	})

	t.Run("should forbid user from verifying order", func(t *testing.T) {
		err := policy.Authorize(newActor(t, actor.RoleUser), services.TransitionVerifyOrder)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Contains(t, err.Error(), "USER cannot perform verify order")
	})

	t.Run("should forbid super admin from verifying order", func(t *testing.T) {
		err := policy.Authorize(newActor(t, actor.RoleSuperAdmin), services.TransitionVerifyOrder)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Contains(t, err.Error(), "SUPER_ADMIN cannot perform verify order")
	})

	t.Run("should forbid key user from assigning craftsman", func(t *testing.T) {
		err := policy.Authorize(newActor(t, actor.RoleKeyUser), services.TransitionAssignCraftsman)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Contains(t, err.Error(), "KEY_USER cannot perform assign craftsman")
	})

	t.Run("should forbid admin from completing order on craftsman's behalf", func(t *testing.T) {
		err := policy.Authorize(newActor(t, actor.RoleAdmin), services.TransitionCompleteOrder)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Contains(t, err.Error(), "ADMIN cannot perform complete order")
	})

	t.Run("should forbid craftsman from approving own completion", func(t *testing.T) {
		err := policy.Authorize(newActor(t, actor.RoleCraftsman), services.TransitionApproveCompletion)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Contains(t, err.Error(), "CRAFTSMAN cannot perform approve completion")
	})

	t.Run("should return error when actor is not constructed", func(t *testing.T) {
		var zeroActor actor.Actor

		err := policy.Authorize(zeroActor, services.TransitionCreateOrder)

		require.Error(t, err)
		assert.Equal(t, actor.ErrActorIsNotConstructed, err)
	})

	t.Run("should return error when transition is unknown", func(t *testing.T) {
		err := policy.Authorize(newActor(t, actor.RoleAdmin), services.TransitionUnknown)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "transition is invalid")
	})

	t.Run("should return error when transition is out of range", func(t *testing.T) {
		err := policy.Authorize(newActor(t, actor.RoleAdmin), services.Transition(99))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "99 is not a valid transition")
	})
}

func TestTransitionPolicy_FullMatrix(t *testing.T) {
	policy := services.NewTransitionPolicy()

	allRoles := []actor.Role{
		actor.RoleUser,
		actor.RoleKeyUser,
		actor.RoleAdmin,
		actor.RoleSuperAdmin,
		actor.RoleCraftsman,
	}

	allowed := map[services.Transition][]actor.Role{
		services.TransitionCreateOrder:       {actor.RoleUser},
		services.TransitionSubmitRequest:     {actor.RoleUser},
		services.TransitionScreenRequest:     {actor.RoleKeyUser},
		services.TransitionApproveOrder:      {actor.RoleKeyUser},
		services.TransitionRejectOrder:       {actor.RoleKeyUser},
		services.TransitionVerifyOrder:       {actor.RoleAdmin},
		services.TransitionAdminRejectOrder:  {actor.RoleAdmin},
		services.TransitionAssignCraftsman:   {actor.RoleAdmin, actor.RoleSuperAdmin},
		services.TransitionAcceptAssignment:  {actor.RoleCraftsman},
		services.TransitionRejectAssignment:  {actor.RoleCraftsman},
		services.TransitionCompleteOrder:     {actor.RoleCraftsman},
		services.TransitionApproveCompletion: {actor.RoleAdmin, actor.RoleSuperAdmin},
		services.TransitionRegisterCraftsman: {actor.RoleAdmin, actor.RoleSuperAdmin},
	}

	for transition, roles := range allowed {
		allowedSet := make(map[actor.Role]bool, len(roles))
		for _, role := range roles {
			allowedSet[role] = true
		}

		for _, role := range allRoles {
			name := fmt.Sprintf("should resolve %s for %s", transition, role)
			t.Run(name, func(t *testing.T) {
				err := policy.Authorize(newActor(t, role), transition)

				if allowedSet[role] {
					assert.NoError(t, err)
				} else {
					require.Error(t, err)
					require.ErrorIs(t, err, errs.ErrForbidden)
				}
			})
		}
	}
}

func TestTransition_Validate(t *testing.T) {
	t.Run("should accept every declared transition", func(t *testing.T) {
		transitions := []services.Transition{
			services.TransitionCreateOrder,
			services.TransitionSubmitRequest,
			services.TransitionScreenRequest,
			services.TransitionApproveOrder,
			services.TransitionRejectOrder,
			services.TransitionVerifyOrder,
			services.TransitionAdminRejectOrder,
			services.TransitionAssignCraftsman,
			services.TransitionAcceptAssignment,
			services.TransitionRejectAssignment,
			services.TransitionCompleteOrder,
			services.TransitionApproveCompletion,
			services.TransitionRegisterCraftsman,
		}

		for _, transition := range transitions {
			assert.NoError(t, transition.Validate(), "transition %s should be valid", transition)
		}
	})

	t.Run("should reject unknown transition", func(t *testing.T) {
		err := services.TransitionUnknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestTransition_String(t *testing.T) {
	t.Run("should return human-readable names", func(t *testing.T) {
		assert.Equal(t, "create order", services.TransitionCreateOrder.String())
		assert.Equal(t, "verify order", services.TransitionVerifyOrder.String())
		assert.Equal(t, "assign craftsman", services.TransitionAssignCraftsman.String())
		assert.Equal(t, "approve completion", services.TransitionApproveCompletion.String())
	})

	t.Run("should return unknown for out of range values", func(t *testing.T) {
		assert.Equal(t, "unknown", services.Transition(42).String())
	})
}
