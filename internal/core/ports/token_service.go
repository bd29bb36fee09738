package ports

import "github.com/genosentinel/auth-gateway/internal/core/domain"

// TokenService issues and inspects the signed bearer tokens the gateway
// hands out. Tokens are stateless; the server keeps no session record.
type TokenService interface {
	// Issue builds a signed, time-bound token for the given identity.
	Issue(username string, role domain.Role) (string, error)
	// Validate reports whether the token parses, verifies, and has not
	// expired. It never returns an error: malformed, badly signed, and
	// expired tokens are all folded into false.
	Validate(token string) bool
	// Username extracts the subject. Fails with domain.ErrTokenInvalid
	// when the token cannot be parsed or verified.
	Username(token string) (string, error)
	// Role extracts the role claim. Fails with domain.ErrTokenInvalid
	// when the token cannot be parsed or verified.
	Role(token string) (domain.Role, error)
}
