// Package httpserver is the HTTP adapter: routing, request shaping and
// response mapping on top of echo.
package httpserver

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Garmonik/reviewpulse/internal/domain"
	"github.com/Garmonik/reviewpulse/internal/platform/config"
)

// reviewService is the subset of the application layer the handlers need.
type reviewService interface {
	CreateReview(ctx context.Context, rawText string) (*domain.Review, error)
	ListReviews(ctx context.Context, filter *domain.Sentiment) ([]domain.Review, error)
}

// HealthCheck is a named readiness check.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type Server struct {
	echo   *echo.Echo
	config *config.Config

	app          reviewService
	healthChecks []HealthCheck
	startTime    time.Time
}

func NewServer(cfg *config.Config, app reviewService, healthChecks []HealthCheck) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:         e,
		config:       cfg,
		app:          app,
		healthChecks: healthChecks,
		startTime:    time.Now(),
	}

	srv.registerRoutes()
	return srv
}

func (s *Server) Start() error {
	if err := s.echo.Start(":" + s.config.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}
