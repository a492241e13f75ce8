package server

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/VHAlvesS/caseAnka-backend/internal/usecase"
)

type Asset struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	CreatedAt string  `json:"createdAt,omitempty"`
	UpdatedAt string  `json:"updatedAt,omitempty"`
}

// ListAssets returns the full catalog, unpaginated.
func (s *Server) ListAssets(ctx echo.Context) error {
	assets, err := s.server.ListAssets(ctx.Request().Context())
	if err != nil {
		return domainError(ctx, err)
	}

	list := make([]Asset, 0, len(assets))
	for _, a := range assets {
		list = append(list, convertAsset(a))
	}

	return ctx.JSON(200, list)
}

func convertAsset(a usecase.Asset) Asset {
	return Asset{
		ID:        a.ID,
		Name:      a.Name,
		Price:     a.Price,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
	}
}
