package service

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/genosentinel/auth-gateway/internal/core/domain"
)

func TestTokenService_IssueValidateRoundTrip(t *testing.T) {
	svc := NewTokenService("not-base64-secret!", time.Hour)

	token, err := svc.Issue("alice", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if !svc.Validate(token) {
		t.Fatalf("freshly issued token did not validate")
	}

	username, err := svc.Username(token)
	if err != nil {
		t.Fatalf("username: %v", err)
	}
	if username != "alice" {
		t.Fatalf("expected alice, got %q", username)
	}

	role, err := svc.Role(token)
	if err != nil {
		t.Fatalf("role: %v", err)
	}
	if role != domain.RoleUser {
		t.Fatalf("expected USER, got %q", role)
	}
}

func TestTokenService_BearerPrefixStripped(t *testing.T) {
	svc := NewTokenService("not-base64-secret!", time.Hour)

	token, err := svc.Issue("alice", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if !svc.Validate("Bearer " + token) {
		t.Fatalf("token with Bearer prefix did not validate")
	}
	if _, err := svc.Username("Bearer " + token); err != nil {
		t.Fatalf("username with Bearer prefix: %v", err)
	}
}

func TestTokenService_ExpiredToken(t *testing.T) {
	svc := NewTokenService("not-base64-secret!", time.Hour)

	past := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return past }

	token, err := svc.Issue("alice", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Still inside the lifetime from the issuer's point of view.
	if !svc.Validate(token) {
		t.Fatalf("token should validate at issue time")
	}

	// Advance the clock past the configured lifetime.
	svc.now = time.Now
	if svc.Validate(token) {
		t.Fatalf("expired token validated")
	}
	if _, err := svc.Username(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_TamperedSignature(t *testing.T) {
	svc := NewTokenService("not-base64-secret!", time.Hour)

	token, err := svc.Issue("alice", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token structure")
	}

	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if svc.Validate(tampered) {
		t.Fatalf("tampered token validated")
	}
}

func TestTokenService_MalformedInput(t *testing.T) {
	svc := NewTokenService("not-base64-secret!", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c", "Bearer "} {
		if svc.Validate(token) {
			t.Fatalf("malformed token %q validated", token)
		}
		if _, err := svc.Username(token); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid for %q, got %v", token, err)
		}
	}
}

func TestTokenService_WrongKey(t *testing.T) {
	issuer := NewTokenService("not-base64-secret!", time.Hour)
	verifier := NewTokenService("another-secret-entirely!", time.Hour)

	token, err := issuer.Issue("alice", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if verifier.Validate(token) {
		t.Fatalf("token validated under a different key")
	}
}

func TestTokenService_Base64SecretDecoded(t *testing.T) {
	raw := []byte("0123456789abcdef0123456789abcdef")
	encoded := base64.StdEncoding.EncodeToString(raw)

	svc := NewTokenService(encoded, time.Hour)

	// A token signed with the decoded key bytes must verify, proving the
	// secret was treated as base64 and not used verbatim.
	claims := jwt.MapClaims{
		"sub":  "alice",
		"role": "USER",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(raw)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if !svc.Validate(signed) {
		t.Fatalf("token signed with decoded key bytes did not validate")
	}
}

func TestTokenService_NonBase64SecretUsedRaw(t *testing.T) {
	secret := "secret with spaces, not base64"
	svc := NewTokenService(secret, time.Hour)

	claims := jwt.MapClaims{
		"sub":  "alice",
		"role": "USER",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if !svc.Validate(signed) {
		t.Fatalf("token signed with raw secret bytes did not validate")
	}
}

func TestTokenService_UnknownRoleClaim(t *testing.T) {
	secret := "not-base64-secret!"
	svc := NewTokenService(secret, time.Hour)

	claims := jwt.MapClaims{
		"sub":  "mallory",
		"role": "SUPERADMIN",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Role(signed); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for unknown role, got %v", err)
	}
}
