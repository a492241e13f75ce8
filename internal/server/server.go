package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/VHAlvesS/caseAnka-backend/internal/config"
	"github.com/VHAlvesS/caseAnka-backend/internal/usecase"
)

// Service represents a service that interacts with a database.
type Service interface {
	// Health returns a map of health status information.
	Health() map[string]string

	// Close terminates the database connection.
	Close() error

	ListClients(context.Context, usecase.ListClientsOption) ([]usecase.Client, int, error)
	CreateClient(context.Context, usecase.Client) (usecase.Client, error)
	UpdateClient(context.Context, uint, usecase.UpdateClientOption) (usecase.Client, error)
	DeleteClient(context.Context, uint) error

	ListAssets(context.Context) ([]usecase.Asset, error)

	ListAllocations(context.Context, uint, usecase.ListAllocationsOption) ([]usecase.Allocation, int, error)
	CreateAllocation(context.Context, usecase.Allocation) (usecase.Allocation, error)
	UpdateAllocation(context.Context, uint, uint, int) (usecase.Allocation, error)
	DeleteAllocation(context.Context, uint, uint) error
}

type Server struct {
	server    Service
	validator *validator.Validate
	logger    *slog.Logger
}

func New(cfg config.Config, svc Service, logger *slog.Logger) *http.Server {
	s := &Server{
		server:    svc,
		validator: newValidator(),
		logger:    logger,
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

func (s *Server) healthHandler(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.server.Health())
}
