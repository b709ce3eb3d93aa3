package actor_test

import (
	"fmt"
	"testing"

	"atelier/internal/core/domain/model/actor"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allValidRoles() []actor.Role {
	return []actor.Role{
		actor.RoleUser,
		actor.RoleKeyUser,
		actor.RoleAdmin,
		actor.RoleSuperAdmin,
		actor.RoleCraftsman,
	}
}

func TestRole_Constants(t *testing.T) {
	t.Run("should have RoleUnknown as zero value", func(t *testing.T) {
		assert.Equal(t, 0, int(actor.RoleUnknown))
	})

	t.Run("should have distinct values", func(t *testing.T) {
		roles := append([]actor.Role{actor.RoleUnknown}, allValidRoles()...)

		for i, role1 := range roles {
			for j, role2 := range roles {
				if i != j {
					assert.NotEqual(t, role1, role2,
						"roles at indices %d and %d should be different", i, j)
				}
			}
		}
	})
}

func TestRole_Validate(t *testing.T) {
	t.Run("should validate valid roles", func(t *testing.T) {
		for _, role := range allValidRoles() {
			t.Run(fmt.Sprintf("should validate %s role", role.String()), func(t *testing.T) {
				require.NoError(t, role.Validate())
			})
		}
	})

	t.Run("should reject RoleUnknown", func(t *testing.T) {
		err := actor.RoleUnknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "role is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid role")
	})

	t.Run("should reject invalid role values", func(t *testing.T) {
		invalidRoles := []actor.Role{
			actor.Role(-1),
			actor.Role(6),
			actor.Role(100),
		}

		for _, role := range invalidRoles {
			t.Run(fmt.Sprintf("should reject role value %d", int(role)), func(t *testing.T) {
				err := role.Validate()

				require.Error(t, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid role", int(role)))
			})
		}
	})
}

func TestRole_String(t *testing.T) {
	testCases := []struct {
		role     actor.Role
		expected string
	}{
		{actor.RoleUser, "USER"},
		{actor.RoleKeyUser, "KEY_USER"},
		{actor.RoleAdmin, "ADMIN"},
		{actor.RoleSuperAdmin, "SUPER_ADMIN"},
		{actor.RoleCraftsman, "CRAFTSMAN"},
		{actor.RoleUnknown, "UNKNOWN"},
		{actor.Role(99), "UNKNOWN"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.role)), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.role.String())
		})
	}
}

func TestRoleFromString(t *testing.T) {
	t.Run("should parse canonical names", func(t *testing.T) {
		for _, role := range allValidRoles() {
			t.Run(role.String(), func(t *testing.T) {
				parsed, err := actor.RoleFromString(role.String())

				require.NoError(t, err)
				assert.Equal(t, role, parsed)
			})
		}
	})

	t.Run("should parse case-insensitively", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected actor.Role
		}{
			{"user", actor.RoleUser},
			{"User", actor.RoleUser},
			{"key_user", actor.RoleKeyUser},
			{"Key User", actor.RoleKeyUser},
			{"key-user", actor.RoleKeyUser},
			{"admin", actor.RoleAdmin},
			{"Super Admin", actor.RoleSuperAdmin},
			{"super-admin", actor.RoleSuperAdmin},
			{"craftsman", actor.RoleCraftsman},
			{"  CRAFTSMAN  ", actor.RoleCraftsman},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				parsed, err := actor.RoleFromString(tc.input)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, parsed)
			})
		}
	})

	t.Run("should reject unknown role strings", func(t *testing.T) {
		invalid := []string{"", "nobody", "UNKNOWN", "admin2", "craftsmen"}

		for _, input := range invalid {
			t.Run(fmt.Sprintf("input %q", input), func(t *testing.T) {
				parsed, err := actor.RoleFromString(input)

				require.Error(t, err)
				assert.Equal(t, actor.RoleUnknown, parsed)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})

	t.Run("round trips through String", func(t *testing.T) {
		for _, role := range allValidRoles() {
			parsed, err := actor.RoleFromString(role.String())
			require.NoError(t, err)
			assert.Equal(t, role.String(), parsed.String())
		}
	})
}
