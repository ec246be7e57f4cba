package handler

import (
	"github.com/labstack/echo/v4"

	"partnerdash/internal/delivery/api/response"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}
