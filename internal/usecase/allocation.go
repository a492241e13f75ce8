package usecase

import (
	"context"
	"time"
)

type Allocation struct {
	ID        uint
	ClientID  uint
	AssetID   uint
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
	Asset     *Asset
}

type ListAllocationsOption struct {
	Skip  int
	Limit int
}

// ListAllocations returns one client's allocations joined with their assets.
// The client is looked up first so an unknown id fails with ErrClientNotFound
// instead of an empty page.
func (u Usecase) ListAllocations(ctx context.Context, clientID uint, opt ListAllocationsOption) ([]Allocation, int, error) {
	if _, err := u.repo.GetClientByID(ctx, clientID); err != nil {
		return nil, 0, err
	}
	return u.repo.ListAllocations(ctx, clientID, opt)
}

// CreateAllocation inserts the row and lets the composite unique index and
// foreign keys arbitrate: a duplicate pair comes back as ErrAllocationExists,
// a missing client or asset as ErrReferenceNotFound.
func (u Usecase) CreateAllocation(ctx context.Context, a Allocation) (Allocation, error) {
	return u.repo.CreateAllocation(ctx, a)
}

func (u Usecase) UpdateAllocation(ctx context.Context, clientID, assetID uint, quantity int) (Allocation, error) {
	return u.repo.UpdateAllocation(ctx, clientID, assetID, quantity)
}

func (u Usecase) DeleteAllocation(ctx context.Context, clientID, assetID uint) error {
	return u.repo.DeleteAllocation(ctx, clientID, assetID)
}
