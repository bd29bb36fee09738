package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/genosentinel/auth-gateway/internal/core/domain"
	"github.com/genosentinel/auth-gateway/internal/upstream"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "invalid credentials",
			err:        domain.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid credentials",
		},
		{
			name:       "invalid token",
			err:        domain.ErrTokenInvalid,
			wantStatus: http.StatusUnauthorized,
			wantError:  "invalid token",
		},
		{
			name:       "user exists",
			err:        domain.ErrUserExists,
			wantStatus: http.StatusConflict,
			wantError:  "username already exists",
		},
		{
			name:       "user not found",
			err:        domain.ErrUserNotFound,
			wantStatus: http.StatusNotFound,
			wantError:  "user not found",
		},
		{
			name:       "upstream error keeps its status and message",
			err:        &upstream.Error{Status: http.StatusNotFound, Message: "Gene not found"},
			wantStatus: http.StatusNotFound,
			wantError:  "Gene not found",
		},
		{
			name:       "echo http error passes through",
			err:        echo.NewHTTPError(http.StatusBadRequest, "invalid payload"),
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid payload",
		},
		{
			name:       "unknown error is masked",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal server error",
		},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler(tt.err, c)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Error != tt.wantError {
				t.Fatalf("error = %q, want %q", body.Error, tt.wantError)
			}
		})
	}
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := c.NoContent(http.StatusOK); err != nil {
		t.Fatalf("no content: %v", err)
	}

	// A committed response must not be overwritten.
	handler(domain.ErrUserExists, c)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
