package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/firelift/firelift/internal/api"
	"github.com/firelift/firelift/internal/config"
	"github.com/firelift/firelift/internal/provisioning"
)

// SetupHandler returns the handler that provisions a project end to end.
func SetupHandler(cfg *config.Config, svc Provisioner) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SetupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Error: "request body must be a JSON object",
			})
		}
		if req.UserID == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Error: "userId is required",
			})
		}

		result, err := svc.Provision(c.Request().Context(), provisioning.Request{
			RequesterID: req.UserID,
			DisplayName: req.ProjectName,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, errorBody(cfg, err))
		}

		return c.JSON(http.StatusOK, api.SetupResponse{
			Success:   true,
			ProjectID: result.ProjectID,
			Config:    result.Config,
			Warnings:  result.Warnings,
		})
	}
}

func errorBody(cfg *config.Config, err error) api.ErrorResponse {
	resp := api.ErrorResponse{Error: publicMessage(err)}
	if !cfg.Production() {
		resp.Details = err.Error()
	}
	return resp
}

// publicMessage maps pipeline failures to stable, credential-free messages.
func publicMessage(err error) string {
	var (
		createErr   *provisioning.CreateError
		fetchErr    *provisioning.ConfigFetchError
		featureErr  *provisioning.FeatureError
		registerErr *provisioning.RegisterError
	)
	switch {
	case errors.Is(err, provisioning.ErrNotConfigured):
		return "server has no service credential configured"
	case errors.As(err, &createErr):
		return "project creation failed: " + createErr.Reason
	case errors.As(err, &fetchErr):
		return "app configuration could not be retrieved"
	case errors.As(err, &featureErr):
		return "Firebase could not be activated on the project"
	case errors.As(err, &registerErr):
		return "web app registration failed"
	default:
		return "project setup failed"
	}
}
