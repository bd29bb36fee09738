package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const serviceName = "auth-gateway"

// HealthHandler answers the liveness probe.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

type healthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}

// Liveness reports that the gateway process is alive.
//
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  healthResponse
// @Router       /health [get]
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status:    "UP",
		Service:   serviceName,
		Timestamp: time.Now(),
	})
}
