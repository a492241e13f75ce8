package database

import (
	"context"
	"time"

	"gorm.io/gorm/clause"

	"github.com/VHAlvesS/caseAnka-backend/internal/usecase"
)

type Asset struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;type:varchar(255);uniqueIndex"`
	Price     float64   `gorm:"column:price;check:price >= 0"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Asset) TableName() string {
	return "assets"
}

func (s *service) ListAssets(ctx context.Context) ([]usecase.Asset, error) {
	var assets []Asset

	err := s.db.WithContext(ctx).Find(&assets).Error
	if err != nil {
		return nil, err
	}

	uassets := make([]usecase.Asset, 0, len(assets))
	for _, a := range assets {
		uassets = append(uassets, a.ConvertToUsecase())
	}

	return uassets, nil
}

// SeedAssets inserts the initial catalog, skipping names already present.
func (s *service) SeedAssets(ctx context.Context, assets []usecase.Asset) error {
	rows := make([]Asset, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, Asset{Name: a.Name, Price: a.Price})
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&rows).
		Error
}

func (a Asset) ConvertToUsecase() usecase.Asset {
	return usecase.Asset{
		ID:        a.ID,
		Name:      a.Name,
		Price:     a.Price,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
