// Package middleware contains the echo middleware of the public HTTP API.
package middleware

import (
	"strings"

	"lodging/internal/domain/entity"
	domainerrors "lodging/internal/domain/errors"
	"lodging/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys set by Authenticate.
const (
	ContextKeySubject    = "subject"
	ContextKeyCustomerID = "customerID"
	ContextKeyScope      = "scope"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for bearer token authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and exposes its claims on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || tokenString == "" {
			return domainerrors.ErrUnauthorized.WithDetails("invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return errors.Wrap(domainerrors.ErrUnauthorized.WithDetails("invalid or expired token"), err.Error())
		}

		customerID, err := uuid.Parse(claims.CustomerID)
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails("customer id missing from token")
		}

		c.Set(ContextKeySubject, claims.Subject)
		c.Set(ContextKeyCustomerID, customerID)
		c.Set(ContextKeyScope, claims.Scope)

		return next(c)
	}
}

// RequireScope is a middleware factory that checks the token scope.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireScope(scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if ScopeFrom(c) != scope {
				return domainerrors.ErrForbidden.WithDetails("requires '" + scope + "' scope")
			}

			return next(c)
		}
	}
}

// CustomerIDFrom returns the authenticated customer id.
func CustomerIDFrom(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextKeyCustomerID).(uuid.UUID)

	return id, ok
}

// ScopeFrom returns the scope of the authenticated token, or "".
func ScopeFrom(c echo.Context) string {
	scope, _ := c.Get(ContextKeyScope).(string)

	return scope
}

// IsAdmin reports whether the token carries the admin scope.
func IsAdmin(c echo.Context) bool {
	return ScopeFrom(c) == entity.ScopeAdmin
}

// RequireSelfOrAdmin allows admins and the customer owning id.
func RequireSelfOrAdmin(c echo.Context, id uuid.UUID) error {
	if IsAdmin(c) {
		return nil
	}

	callerID, ok := CustomerIDFrom(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}
	if callerID != id {
		return domainerrors.ErrForbidden.WithDetails("resource belongs to another customer")
	}

	return nil
}
