package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular user role.
	RoleUser Role = "User"
	// RoleAdmin indicates an administrator role.
	RoleAdmin Role = "Admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleFromString converts a string claim back to a Role, falling back to
// RoleUser for unknown values.
func RoleFromString(s string) Role {
	role := Role(s)
	if role.IsValid() {
		return role
	}

	return RoleUser
}
