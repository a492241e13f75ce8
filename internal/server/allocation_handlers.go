package server

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/VHAlvesS/caseAnka-backend/internal/usecase"
)

type Allocation struct {
	ID        uint             `json:"id"`
	ClientID  uint             `json:"clientId"`
	AssetID   uint             `json:"assetId"`
	Quantity  int              `json:"quantity"`
	CreatedAt string           `json:"createdAt,omitempty"`
	UpdatedAt string           `json:"updatedAt,omitempty"`
	Asset     *AllocationAsset `json:"asset,omitempty"`
}

// AllocationAsset is the slice of asset detail a listed allocation carries.
type AllocationAsset struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type ListAllocationsRequest struct {
	ID      uint `json:"-" param:"id" validate:"required"`
	Page    int  `query:"page" validate:"gte=1"`
	PerPage int  `query:"perPage" validate:"gte=1"`
}

func (s *Server) ListAllocations(ctx echo.Context) error {
	var req = ListAllocationsRequest{Page: 1, PerPage: 10}
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, Res{Message: err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return validationError(ctx, err)
	}

	allocations, total, err := s.server.ListAllocations(ctx.Request().Context(), req.ID, usecase.ListAllocationsOption{
		Skip:  (req.Page - 1) * req.PerPage,
		Limit: req.PerPage,
	})
	if err != nil {
		return domainError(ctx, err)
	}

	list := make([]Allocation, 0, len(allocations))
	for _, a := range allocations {
		alloc := convertAllocation(a)
		if a.Asset != nil {
			alloc.Asset = &AllocationAsset{
				ID:    a.Asset.ID,
				Name:  a.Asset.Name,
				Price: a.Asset.Price,
			}
		}
		list = append(list, alloc)
	}

	return ctx.JSON(200, Res{
		Data: list,
		Meta: NewMeta(req.Page, req.PerPage, total),
	})
}

type CreateAllocationRequest struct {
	// json:"-" keeps the body bind from touching the path id
	ID uint `json:"-" param:"id" validate:"required"`

	AssetID  uint `json:"assetId" validate:"required"`
	Quantity int  `json:"quantity" validate:"required,gt=0"`
}

func (s *Server) CreateAllocation(ctx echo.Context) error {
	var req CreateAllocationRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, Res{Message: err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return validationError(ctx, err)
	}

	a, err := s.server.CreateAllocation(ctx.Request().Context(), usecase.Allocation{
		ClientID: req.ID,
		AssetID:  req.AssetID,
		Quantity: req.Quantity,
	})
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(201, convertAllocation(a))
}

type UpdateAllocationRequest struct {
	ID      uint `json:"-" param:"id" validate:"required"`
	AssetID uint `json:"-" param:"assetId" validate:"required"`

	Quantity int `json:"quantity" validate:"required,gt=0"`
}

func (s *Server) UpdateAllocation(ctx echo.Context) error {
	var req UpdateAllocationRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, Res{Message: err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return validationError(ctx, err)
	}

	a, err := s.server.UpdateAllocation(ctx.Request().Context(), req.ID, req.AssetID, req.Quantity)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(200, convertAllocation(a))
}

type DeleteAllocationRequest struct {
	ID      uint `json:"-" param:"id" validate:"required"`
	AssetID uint `json:"-" param:"assetId" validate:"required"`
}

func (s *Server) DeleteAllocation(ctx echo.Context) error {
	var req DeleteAllocationRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, Res{Message: err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return validationError(ctx, err)
	}

	err := s.server.DeleteAllocation(ctx.Request().Context(), req.ID, req.AssetID)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(204)
}

func convertAllocation(a usecase.Allocation) Allocation {
	return Allocation{
		ID:        a.ID,
		ClientID:  a.ClientID,
		AssetID:   a.AssetID,
		Quantity:  a.Quantity,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
	}
}
