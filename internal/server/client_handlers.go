package server

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/VHAlvesS/caseAnka-backend/internal/usecase"
)

type Client struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Status    bool   `json:"status"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

type ListClientsRequest struct {
	Page    int `query:"page" validate:"gte=1"`
	PerPage int `query:"perPage" validate:"gte=1"`
}

func (s *Server) ListClients(ctx echo.Context) error {
	var req = ListClientsRequest{Page: 1, PerPage: 10}
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, Res{Message: err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return validationError(ctx, err)
	}

	clients, total, err := s.server.ListClients(ctx.Request().Context(), usecase.ListClientsOption{
		Skip:  (req.Page - 1) * req.PerPage,
		Limit: req.PerPage,
	})
	if err != nil {
		return domainError(ctx, err)
	}

	list := make([]Client, 0, len(clients))
	for _, c := range clients {
		list = append(list, convertClient(c))
	}

	return ctx.JSON(200, Res{
		Data: list,
		Meta: NewMeta(req.Page, req.PerPage, total),
	})
}

type CreateClientRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Status *bool  `json:"status" validate:"required"`
}

func (s *Server) CreateClient(ctx echo.Context) error {
	var req CreateClientRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, Res{Message: err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return validationError(ctx, err)
	}

	c, err := s.server.CreateClient(ctx.Request().Context(), usecase.Client{
		Name:   req.Name,
		Email:  req.Email,
		Status: *req.Status,
	})
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(201, convertClient(c))
}

type UpdateClientRequest struct {
	// json:"-" keeps the body bind from touching the path id
	ID uint `json:"-" param:"id" validate:"required"`

	Name   *string `json:"name"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Status *bool   `json:"status"`
}

// UpdateClient changes only the fields the body supplies.
func (s *Server) UpdateClient(ctx echo.Context) error {
	var req UpdateClientRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, Res{Message: err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return validationError(ctx, err)
	}

	c, err := s.server.UpdateClient(ctx.Request().Context(), req.ID, usecase.UpdateClientOption{
		Name:   req.Name,
		Email:  req.Email,
		Status: req.Status,
	})
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(200, convertClient(c))
}

type DeleteClientRequest struct {
	ID uint `json:"-" param:"id" validate:"required"`
}

func (s *Server) DeleteClient(ctx echo.Context) error {
	var req DeleteClientRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, Res{Message: err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return validationError(ctx, err)
	}

	err := s.server.DeleteClient(ctx.Request().Context(), req.ID)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(204)
}

func convertClient(c usecase.Client) Client {
	return Client{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Status:    c.Status,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}
