package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler returns the liveness probe handler.
func HealthHandler(svc Provisioner) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, svc.Health())
	}
}
