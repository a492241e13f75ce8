package database

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/VHAlvesS/caseAnka-backend/internal/usecase"
)

type Allocation struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	ClientID  uint      `gorm:"column:client_id;uniqueIndex:idx_allocations_client_asset"`
	AssetID   uint      `gorm:"column:asset_id;uniqueIndex:idx_allocations_client_asset"`
	Quantity  int       `gorm:"column:quantity;check:quantity > 0"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
	Client    *Client   `gorm:"foreignKey:ClientID"`
	Asset     *Asset    `gorm:"foreignKey:AssetID"`
}

func (Allocation) TableName() string {
	return "allocations"
}

func (s *service) ListAllocations(ctx context.Context, clientID uint, opt usecase.ListAllocationsOption) ([]usecase.Allocation, int, error) {
	var (
		allocations []Allocation
		count       int64
	)

	err := s.db.WithContext(ctx).
		Model([]Allocation{}).
		Where("allocations.client_id = ?", clientID).
		Joins("Asset").
		Count(&count).
		Limit(opt.Limit).
		Offset(opt.Skip).
		Find(&allocations).
		Error
	if err != nil {
		return nil, 0, err
	}

	uallocations := make([]usecase.Allocation, 0, len(allocations))
	for _, a := range allocations {
		ua := a.ConvertToUsecase()
		if a.Asset != nil {
			asset := a.Asset.ConvertToUsecase()
			ua.Asset = &asset
		}
		uallocations = append(uallocations, ua)
	}

	return uallocations, int(count), nil
}

// CreateAllocation relies on the schema to arbitrate: the composite unique
// index rejects a second row for the same (client, asset) pair and the
// foreign keys reject dangling references.
func (s *service) CreateAllocation(ctx context.Context, allocation usecase.Allocation) (usecase.Allocation, error) {
	a := Allocation{
		ClientID: allocation.ClientID,
		AssetID:  allocation.AssetID,
		Quantity: allocation.Quantity,
	}

	err := s.db.WithContext(ctx).Create(&a).Error
	if err != nil {
		return usecase.Allocation{}, translateAllocationError(err)
	}

	return a.ConvertToUsecase(), nil
}

// translateAllocationError maps constraint violations on allocations to the
// domain errors the server layer understands; anything else passes through.
func translateAllocationError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return usecase.ErrAllocationExists
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return usecase.ErrReferenceNotFound
	}
	return err
}

func (s *service) UpdateAllocation(ctx context.Context, clientID, assetID uint, quantity int) (usecase.Allocation, error) {
	res := s.db.WithContext(ctx).
		Model(&Allocation{}).
		Where("client_id = ? AND asset_id = ?", clientID, assetID).
		Update("quantity", quantity)
	if res.Error != nil {
		return usecase.Allocation{}, res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.Allocation{}, usecase.ErrAllocationNotFound
	}

	var a Allocation
	err := s.db.WithContext(ctx).
		Where("client_id = ? AND asset_id = ?", clientID, assetID).
		First(&a).
		Error
	if err != nil {
		return usecase.Allocation{}, err
	}

	return a.ConvertToUsecase(), nil
}

func (s *service) DeleteAllocation(ctx context.Context, clientID, assetID uint) error {
	res := s.db.WithContext(ctx).
		Where("client_id = ? AND asset_id = ?", clientID, assetID).
		Delete(&Allocation{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrAllocationNotFound
	}
	return nil
}

func (a Allocation) ConvertToUsecase() usecase.Allocation {
	return usecase.Allocation{
		ID:        a.ID,
		ClientID:  a.ClientID,
		AssetID:   a.AssetID,
		Quantity:  a.Quantity,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
