package usecase

import (
	"context"
	"time"
)

type Asset struct {
	ID        uint
	Name      string
	Price     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u Usecase) ListAssets(ctx context.Context) ([]Asset, error) {
	return u.repo.ListAssets(ctx)
}
