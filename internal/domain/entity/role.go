// Package entity contains the core business objects of the project.
package entity

import "strings"

// Role represents the single role an identity holds.
type Role string

const (
	// RoleAdmin has unrestricted access.
	RoleAdmin Role = "Admin"
	// RoleMR is a medical representative; sees and mutates only records it owns.
	RoleMR Role = "MR"
	// RoleManager is stored for reporting lines. It is granted the MR rule set.
	RoleManager Role = "Manager"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a known value, ignoring case.
func (r Role) IsValid() bool {
	_, ok := ParseRole(string(r))

	return ok
}

// Is compares two roles case-insensitively.
func (r Role) Is(other Role) bool {
	return strings.EqualFold(strings.TrimSpace(string(r)), string(other))
}

// IsAdmin reports whether the role is Admin in any letter case.
func (r Role) IsAdmin() bool {
	return r.Is(RoleAdmin)
}

// ParseRole normalizes a role string ("admin", "ADMIN", "Admin") to its canonical value.
func ParseRole(s string) (Role, bool) {
	for _, role := range []Role{RoleAdmin, RoleMR, RoleManager} {
		if role.Is(Role(s)) {
			return role, true
		}
	}

	return "", false
}
