package actor

import (
	"fmt"
	"strings"

	"atelier/internal/pkg/errs"
)

// Role represents the workflow role an actor holds. Every mutating operation
// is gated on the caller's role; the mapping of roles to permitted transitions
// lives in the services.TransitionPolicy table.
//
// Role is a value object with string representations for transport and display.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleUser is the seller/customer-class role that creates orders and
	// submits order requests.
	RoleUser

	// RoleKeyUser is the first-line approver that screens requests and moves
	// pending orders onward, or reject-deletes them.
	RoleKeyUser

	// RoleAdmin is the second-line approver that verifies, rejects, assigns
	// orders, and approves completion.
	RoleAdmin

	// RoleSuperAdmin holds the same assignment and completion-approval rights
	// as RoleAdmin.
	RoleSuperAdmin

	// RoleCraftsman is the fulfillment role: the assigned craftsman accepts,
	// rejects, or reports completion of an order.
	RoleCraftsman
)

// getRoleStrings returns a map of Role values to their string representations.
// All roles are included for string conversion.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:    "UNKNOWN",
		RoleUser:       "USER",
		RoleKeyUser:    "KEY_USER",
		RoleAdmin:      "ADMIN",
		RoleSuperAdmin: "SUPER_ADMIN",
		RoleCraftsman:  "CRAFTSMAN",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
// Only valid roles are included to support validation and parsing.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleUser:       "USER",
		RoleKeyUser:    "KEY_USER",
		RoleAdmin:      "ADMIN",
		RoleSuperAdmin: "SUPER_ADMIN",
		RoleCraftsman:  "CRAFTSMAN",
	}
}

// RoleFromString parses a role from its string representation.
// Parsing is case-insensitive and accepts spaces or hyphens in place of
// underscores, so "key user", "Key-User", and "KEY_USER" all resolve to
// RoleKeyUser.
//
// Returns a validation error if the string matches no valid role.
func RoleFromString(value string) (Role, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")

	for role, str := range getValidRoleStrings() {
		if str == normalized {
			return role, nil
		}
	}

	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", value))
}

// Validate checks if the Role value is valid.
//
// RoleUnknown (0) and any other values outside the declared constants are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the canonical name of the role, e.g. "KEY_USER".
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Role value, including invalid ones.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}
