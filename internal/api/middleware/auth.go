package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/genosentinel/auth-gateway/internal/core/domain"
	"github.com/genosentinel/auth-gateway/internal/core/ports"
)

// identityKey is the request-scoped slot the authenticator writes to.
const identityKey = "identity"

// Authenticate inspects the Authorization header once per request. A valid
// bearer token attaches the decoded identity to the request scope; anything
// else leaves the request anonymous. The middleware never rejects; routes
// that need an identity enforce it themselves (see RequireUser).
func Authenticate(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return next(c)
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")

			username, err := tokens.Username(token)
			if err != nil {
				return next(c)
			}
			role, err := tokens.Role(token)
			if err != nil {
				return next(c)
			}

			if _, attached := Identity(c); !attached {
				c.Set(identityKey, domain.Identity{Username: username, Role: role})
			}

			return next(c)
		}
	}
}

// RequireUser rejects requests that reached this point without an
// authenticated identity.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := Identity(c); !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}

// Identity returns the identity attached by Authenticate, if any.
func Identity(c echo.Context) (domain.Identity, bool) {
	id, ok := c.Get(identityKey).(domain.Identity)
	return id, ok
}
