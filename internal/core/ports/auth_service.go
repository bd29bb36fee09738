package ports

import (
	"context"

	"github.com/genosentinel/auth-gateway/internal/core/domain"
)

// AuthResult is the outcome of a successful login or registration.
type AuthResult struct {
	Token    string
	Username string
	Email    string
	Role     domain.Role
}

// Introspection is the outcome of a successful token validation.
type Introspection struct {
	Username string
	Role     domain.Role
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	Register(ctx context.Context, username, email, password string) (*AuthResult, error)
	ValidateToken(authHeader string) (*Introspection, error)
}
