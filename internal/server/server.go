// Package server owns the HTTP surface: the webhook endpoint, the liveness
// endpoint and the middleware stack.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/hellofresh/health-go/v5"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/ashphy/reviewer-auto-assign/internal/webhook"
)

type Server struct {
	echo            *echo.Echo
	port            string
	shutdownTimeout time.Duration
	log             *zap.Logger
}

func New(port string, shutdownTimeout time.Duration, handler *webhook.Handler, log *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(RequestLogger(log))

	e.POST("/", handler.Handle)
	e.GET("/healthz", healthHandler())

	return &Server{
		echo:            e,
		port:            port,
		shutdownTimeout: shutdownTimeout,
		log:             log,
	}
}

func healthHandler() echo.HandlerFunc {
	h, _ := health.New(health.WithComponent(health.Component{
		Name:    "reviewer-auto-assign",
		Version: "v1.0.0",
	}))
	return echo.WrapHandler(h.Handler())
}

// Run starts the server and blocks until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.echo.Start(":" + s.port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.log.Info("server started", zap.String("port", s.port))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	return s.echo.Shutdown(shutdownCtx)
}
