package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/genosentinel/auth-gateway/internal/api/metrics"
	"github.com/genosentinel/auth-gateway/internal/core/domain"
	"github.com/genosentinel/auth-gateway/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, toAuthResponse(result))
}

// Register creates a new user account and returns its first token.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		} else {
			metrics.RegistrationsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, toAuthResponse(result))
}

// Validate introspects the caller's bearer token.
//
// @Summary      Validate a bearer token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  validateResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/validate [get]
func (h *AuthHandler) Validate(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")

	intro, err := h.authService.ValidateToken(authHeader)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, validateResponse{
		Username: intro.Username,
		Role:     intro.Role.String(),
		Valid:    "true",
	})
}

func toAuthResponse(r *ports.AuthResult) authResponse {
	return authResponse{
		AccessToken: r.Token,
		TokenType:   "Bearer",
		Username:    r.Username,
		Email:       r.Email,
		Role:        r.Role.String(),
	}
}
