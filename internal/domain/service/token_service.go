package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"bookstore/internal/domain/entity"
)

// Token validation failure kinds. The delivery layer collapses all of them
// to a single 401; they are distinguished here for logging and tests.
var (
	// ErrTokenSignatureInvalid indicates the signature did not verify.
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")

	// ErrTokenExpired indicates the token lifetime has passed.
	ErrTokenExpired = errors.New("token has expired")

	// ErrTokenIssuerMismatch indicates the iss claim does not match the configured issuer.
	ErrTokenIssuerMismatch = errors.New("token issuer mismatch")

	// ErrTokenAudienceMismatch indicates the aud claim does not match the configured audience.
	ErrTokenAudienceMismatch = errors.New("token audience mismatch")

	// ErrTokenMalformed indicates the token could not be parsed at all.
	ErrTokenMalformed = errors.New("token is malformed")
)

// Claims defines the identity claims embedded in issued tokens.
type Claims struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// UserID returns the subject claim, the token holder's user identifier.
func (c *Claims) UserID() string {
	return c.Subject
}

// TokenService defines the interface for issuing and validating bearer tokens.
// Tokens are stateless: there is no revocation list, a token stays valid
// until natural expiry.
type TokenService interface {
	// Issue creates a signed token carrying the user's identity claims.
	Issue(user *entity.User) (string, error)

	// Validate checks signature, expiry, issuer and audience of a token
	// string, returning the embedded claims on success.
	Validate(tokenString string) (*Claims, error)
}
