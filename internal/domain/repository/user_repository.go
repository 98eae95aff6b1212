package repository

import (
	"context"
	"errors"

	"bookstore/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// Update and Remove are part of the contract but are not exercised by the
// API surface in the current scope.
type UserRepository interface {
	Repository[entity.User]

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
