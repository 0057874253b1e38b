package middleware

import (
	"strings"

	"github.com/dimitrije/intervue-api/internal/identity"
	"github.com/m1z23r/drift/pkg/drift"
)

const CallerKey = "caller"

type TokenValidator interface {
	ValidateToken(token string) (*identity.Caller, error)
}

// Auth rejects requests without a valid session token.
func Auth(validator TokenValidator) drift.HandlerFunc {
	return func(c *drift.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Unauthorized("missing authorization header")
			return
		}

		if !authenticate(c, validator, authHeader) {
			return
		}

		c.Next()
	}
}

// OptionalAuth attaches the caller when a session token is present and lets
// anonymous requests through. A present but invalid token is still rejected.
func OptionalAuth(validator TokenValidator) drift.HandlerFunc {
	return func(c *drift.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && !authenticate(c, validator, authHeader) {
			return
		}

		c.Next()
	}
}

func authenticate(c *drift.Context, validator TokenValidator, authHeader string) bool {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
		c.Unauthorized("invalid authorization header format")
		return false
	}

	caller, err := validator.ValidateToken(parts[1])
	if err != nil {
		c.Unauthorized("invalid or expired token")
		return false
	}

	c.Set(CallerKey, caller)
	return true
}

// GetCaller returns the authenticated caller, or nil for anonymous requests.
func GetCaller(c *drift.Context) *identity.Caller {
	if v, ok := c.Get(CallerKey); ok {
		if caller, ok := v.(*identity.Caller); ok {
			return caller
		}
	}
	return nil
}
