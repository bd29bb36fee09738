package domain

import (
	"errors"
	"time"
)

// Role is the closed set of roles a user can hold. Every account today
// carries RoleUser; new roles are added by declaring a constant here and
// extending ParseRole.
type Role string

const (
	RoleUser Role = "USER"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrTokenInvalid = errors.New("invalid token")

// ParseRole maps a raw claim value onto a known Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser:
		return RoleUser, nil
	}
	return "", ErrTokenInvalid
}

func (r Role) String() string { return string(r) }

// User models an account held in the credential store. Username and email
// are unique and immutable after creation; uniqueness is enforced by the
// store at write time.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the (username, role) pair recovered from a valid token.
// It lives for a single request and is never persisted or shared.
type Identity struct {
	Username string
	Role     Role
}
