package service

import (
	"encoding/base64"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/genosentinel/auth-gateway/internal/core/domain"
)

const bearerPrefix = "Bearer "

// base64Pattern decides at startup whether the configured secret is treated
// as an encoded key or as raw bytes.
var base64Pattern = regexp.MustCompile(`^[A-Za-z0-9+/=]+$`)

// TokenService issues and verifies HS256-signed identity tokens.
type TokenService struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewTokenService derives the signing key once from the configured secret:
// a secret that looks like base64 is decoded to raw key bytes, anything else
// is used byte-for-byte. The key is immutable for the process lifetime.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{
		key: deriveKey(secret),
		ttl: ttl,
		now: time.Now,
	}
}

func deriveKey(secret string) []byte {
	if base64Pattern.MatchString(secret) {
		if raw, err := base64.StdEncoding.DecodeString(secret); err == nil {
			return raw
		}
	}
	return []byte(secret)
}

// Issue builds a token carrying {sub, role, iat, exp}.
func (s *TokenService) Issue(username string, role domain.Role) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":  username,
		"role": role.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.key)
}

// Validate reports whether the token parses, verifies, and has not expired.
// Signature mismatch, expiry, and malformed structure are deliberately
// indistinguishable to callers.
func (s *TokenService) Validate(token string) bool {
	_, err := s.parse(token)
	return err == nil
}

// Username extracts the subject claim.
func (s *TokenService) Username(token string) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", err
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", domain.ErrTokenInvalid
	}
	return sub, nil
}

// Role extracts the role claim.
func (s *TokenService) Role(token string) (domain.Role, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", err
	}
	raw, _ := claims["role"].(string)
	return domain.ParseRole(raw)
}

// parse strips an optional "Bearer " prefix, verifies the signature and the
// registered time claims, and returns the payload. Every failure mode maps
// to domain.ErrTokenInvalid.
func (s *TokenService) parse(token string) (jwt.MapClaims, error) {
	token = strings.TrimPrefix(token, bearerPrefix)

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.key, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}

	return claims, nil
}
