package auth

import (
	"testing"
	"time"

	"bookstore/config"
	"bookstore/internal/domain/entity"
	"bookstore/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() *config.Config {
	return &config.Config{
		JWT: &config.JWTConfig{
			SecretKey:         "test_secret_key_very_long_for_testing",
			Issuer:            "BookStoreApi",
			Audience:          "BookStoreClient",
			ExpirationMinutes: 60,
		},
	}
}

func testUser() *entity.User {
	return &entity.User{
		ID:       "64f1a2b3c4d5e6f7a8b9c0d1",
		Email:    "reader@example.com",
		Username: "reader",
		Role:     entity.RoleUser,
	}
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	user := testUser()

	token, err := jwtService.Issue(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.Validate(token)
	require.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, user.ID, claims.UserID())
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, "User", claims.Role)
	assert.Equal(t, "BookStoreApi", claims.Issuer)
	assert.Contains(t, claims.Audience, "BookStoreClient")
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{JWT: &config.JWTConfig{}})
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_MalformedToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	claims, err := jwtService.Validate("clearly-not-a-jwt-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenMalformed))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := &jwtService{
		secretKey: "test_secret_key_very_long_for_testing",
		issuer:    "BookStoreApi",
		audience:  "BookStoreClient",
		ttl:       -time.Minute, // already expired at issuance
	}

	token, err := svc.Issue(testUser())
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenExpired))
}

func TestJWTService_WrongSignature(t *testing.T) {
	issuerSvc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	otherCfg := testJWTConfig()
	otherCfg.JWT.SecretKey = "a_completely_different_secret_key"
	validatorSvc, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := issuerSvc.Issue(testUser())
	require.NoError(t, err)

	claims, err := validatorSvc.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenSignatureInvalid))
}

func TestJWTService_WrongIssuer(t *testing.T) {
	issuerCfg := testJWTConfig()
	issuerCfg.JWT.Issuer = "SomeOtherApi"
	issuerSvc, err := NewJWTService(issuerCfg)
	require.NoError(t, err)

	validatorSvc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	token, err := issuerSvc.Issue(testUser())
	require.NoError(t, err)

	claims, err := validatorSvc.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenIssuerMismatch))
}

func TestJWTService_WrongAudience(t *testing.T) {
	issuerCfg := testJWTConfig()
	issuerCfg.JWT.Audience = "SomeOtherClient"
	issuerSvc, err := NewJWTService(issuerCfg)
	require.NoError(t, err)

	validatorSvc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	token, err := issuerSvc.Issue(testUser())
	require.NoError(t, err)

	claims, err := validatorSvc.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, service.ErrTokenAudienceMismatch))
}

func TestJWTService_DefaultTTL(t *testing.T) {
	cfg := testJWTConfig()
	cfg.JWT.ExpirationMinutes = 0

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := jwtService.Issue(testUser())
	require.NoError(t, err)

	claims, err := jwtService.Validate(token)
	require.NoError(t, err)

	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, defaultTokenTTL, lifetime)
}
