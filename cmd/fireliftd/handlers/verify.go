package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/firelift/firelift/internal/api"
)

// VerifyHandler returns the handler for the offline config check. It never
// calls the platform; validity here means the required identifying fields
// are present. An invalid config is a client error, not a success with a
// flag.
func VerifyHandler(svc Provisioner) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.VerifyRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Error: "request body must be a JSON object",
			})
		}

		if !svc.Verify(req.Config) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Error: "configuration is missing required fields",
			})
		}

		return c.JSON(http.StatusOK, api.VerifyResponse{
			Success: true,
			Message: "configuration is valid",
		})
	}
}
