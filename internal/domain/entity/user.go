package entity

import "time"

// User is the core entity in the system, representing a unique account.
// The password is never held in plaintext after registration; only the
// bcrypt hash is stored.
type User struct {
	ID           string    // Store-assigned opaque identifier (hex ObjectID).
	Email        string    // Unique login identifier, enforced by a unique index.
	Username     string    // The user's display name.
	PasswordHash string    // Salted bcrypt hash of the password.
	Role         Role      // Authorization role, defaults to RoleUser.
	CreatedAt    time.Time // Set once at registration, immutable afterwards.
}
