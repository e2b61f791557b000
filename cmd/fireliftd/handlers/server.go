// Package handlers wires the HTTP surface of fireliftd: route registration,
// middleware and the request handlers themselves.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/firelift/firelift/internal/appconfig"
	"github.com/firelift/firelift/internal/config"
	"github.com/firelift/firelift/internal/provisioning"
)

// Provisioner is the slice of the provisioning service the HTTP layer
// needs. Tests substitute a service built on a mock platform client.
type Provisioner interface {
	Provision(ctx context.Context, req provisioning.Request) (*provisioning.Result, error)
	Verify(cfg appconfig.Config) bool
	Health() provisioning.HealthStatus
}

// Serve loads configuration, builds the server and runs it until the
// context is cancelled.
func Serve(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	svc := provisioning.NewService(cfg)
	e := NewEcho(cfg, svc)

	go func() {
		<-ctx.Done()
		graceful, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := e.Shutdown(graceful); err != nil {
			e.Logger.Errorf("shutdown: %s", err)
		}
	}()

	if err := e.Start(cfg.ListenAddr); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// NewEcho assembles the echo instance: middleware, CORS and routes.
func NewEcho(cfg *config.Config, svc Provisioner) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(logLevel(cfg.LogLevel))

	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.AllowedOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))

	e.GET("/health", HealthHandler(svc))
	e.POST("/api/setupFirebase", SetupHandler(cfg, svc))
	e.POST("/api/verifyFirebase", VerifyHandler(svc))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

func logLevel(level string) log.Lvl {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
