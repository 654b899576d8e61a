// Package entity contains the core business objects of the project.
package entity

// Role represents the access tier of an account in the system.
type Role string

const (
	// RoleUser indicates a regular rating user.
	RoleUser Role = "user"
	// RoleStore indicates a store account. Store accounts authenticate like
	// users but only see their own ratings.
	RoleStore Role = "store"
	// RoleAdmin indicates an administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is one of the closed set of roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleStore, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole converts a raw string into a Role, reporting whether it is valid.
func ParseRole(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
