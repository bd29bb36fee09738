package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/genosentinel/auth-gateway/internal/core/domain"
	"github.com/genosentinel/auth-gateway/internal/core/ports"
)

// AuthService implements login, registration, and token introspection.
// Each call is atomic and self-contained; no state survives between calls.
type AuthService struct {
	repo   ports.UserRepository
	tokens ports.TokenService
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Login verifies the credentials and issues a token. An unknown username and
// a wrong password produce the same error so callers cannot tell which failed.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	return &ports.AuthResult{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}, nil
}

// Register creates a new account with the fixed USER role and issues its
// first token. Email uniqueness is left to the store's constraint; a
// duplicate email surfaces as the same conflict as a duplicate username.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*ports.AuthResult, error) {
	if username == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	exists, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(created.Username, created.Role)
	if err != nil {
		return nil, err
	}

	return &ports.AuthResult{
		Token:    token,
		Username: created.Username,
		Email:    created.Email,
		Role:     created.Role,
	}, nil
}

// ValidateToken introspects a raw Authorization header value.
func (s *AuthService) ValidateToken(authHeader string) (*ports.Introspection, error) {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, domain.ErrTokenInvalid
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if !s.tokens.Validate(token) {
		return nil, domain.ErrTokenInvalid
	}

	username, err := s.tokens.Username(token)
	if err != nil {
		return nil, err
	}
	role, err := s.tokens.Role(token)
	if err != nil {
		return nil, err
	}

	return &ports.Introspection{Username: username, Role: role}, nil
}
