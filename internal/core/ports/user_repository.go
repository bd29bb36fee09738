package ports

import (
	"context"

	"github.com/genosentinel/auth-gateway/internal/core/domain"
)

// UserRepository defines the interface for user credential persistence.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
