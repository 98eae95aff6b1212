package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bookstore/config"
	"bookstore/internal/domain/entity"
	"bookstore/internal/domain/service"
	"bookstore/internal/errors"
)

const defaultTokenTTL = time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secretKey string        // Shared symmetric secret for HS256 signing.
	issuer    string        // Expected iss claim.
	audience  string        // Expected aud claim.
	ttl       time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT == nil || cfg.JWT.SecretKey == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultTokenTTL
	if cfg.JWT.ExpirationMinutes > 0 {
		ttl = time.Duration(cfg.JWT.ExpirationMinutes) * time.Minute
	}

	return &jwtService{
		secretKey: cfg.JWT.SecretKey,
		issuer:    cfg.JWT.Issuer,
		audience:  cfg.JWT.Audience,
		ttl:       ttl,
	}, nil
}

// Issue creates a signed token embedding the user's identity claims with an
// expiry of now + the configured TTL.
func (s *jwtService) Issue(user *entity.User) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Email:    user.Email,
		Username: user.Username,
		Role:     user.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secretKey))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate checks the signature, expiry, issuer and audience of a token
// string. Failures are mapped to the domain's token error kinds.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secretKey), nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, mapTokenError(err)
	}

	if !token.Valid {
		return nil, errors.WithStack(service.ErrTokenSignatureInvalid)
	}

	return claims, nil
}

// mapTokenError converts jwt library errors to the domain's sentinel kinds.
// Expiry is checked before signature kinds because the library joins
// multiple validation failures into one error.
func mapTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.Wrap(service.ErrTokenExpired, err.Error())
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return errors.Wrap(service.ErrTokenIssuerMismatch, err.Error())
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return errors.Wrap(service.ErrTokenAudienceMismatch, err.Error())
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
		return errors.Wrap(service.ErrTokenSignatureInvalid, err.Error())
	case errors.Is(err, jwt.ErrTokenMalformed):
		return errors.Wrap(service.ErrTokenMalformed, err.Error())
	default:
		return errors.Wrap(err, "failed to validate token")
	}
}
