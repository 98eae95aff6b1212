// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the issued bearer token after a successful
// registration or login.
type AuthOutput struct {
	Token    string
	Username string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new account and returns a freshly issued token.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and returns a freshly issued token.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
