// Package middleware contains the HTTP middleware for the API pipeline.
package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"bookstore/internal/delivery/http/response"
	"bookstore/internal/domain/entity"
	"bookstore/internal/domain/service"
)

// Context keys for the identity claims set by Authenticate.
const (
	keyUserID   = "userID"
	keyEmail    = "email"
	keyUsername = "username"
	keyRole     = "role"
)

// AuthMiddleware provides middleware for bearer token authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token before the request reaches the
// service layer. All token failures collapse to the same 401; the specific
// kind is not leaked to the caller.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		// Set identity claims on the context for handlers to use
		c.Set(keyUserID, claims.UserID())
		c.Set(keyEmail, claims.Email)
		c.Set(keyUsername, claims.Username)
		c.Set(keyRole, entity.RoleFromString(claims.Role))

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := GetRole(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if role != requiredRole {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

// GetUserID extracts the authenticated user's identifier from the context.
func GetUserID(c echo.Context) (string, bool) {
	id, ok := c.Get(keyUserID).(string)

	return id, ok && id != ""
}

// GetUsername extracts the authenticated user's display name from the context.
func GetUsername(c echo.Context) (string, bool) {
	name, ok := c.Get(keyUsername).(string)

	return name, ok
}

// GetRole extracts the authenticated user's role from the context.
func GetRole(c echo.Context) (entity.Role, bool) {
	role, ok := c.Get(keyRole).(entity.Role)

	return role, ok
}
