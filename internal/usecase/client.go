package usecase

import (
	"context"
	"time"
)

type Client struct {
	ID        uint
	Name      string
	Email     string
	Status    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ListClientsOption struct {
	Skip  int
	Limit int
}

func (u Usecase) ListClients(ctx context.Context, opt ListClientsOption) ([]Client, int, error) {
	return u.repo.ListClients(ctx, opt)
}

func (u Usecase) GetClientByID(ctx context.Context, id uint) (Client, error) {
	return u.repo.GetClientByID(ctx, id)
}

func (u Usecase) CreateClient(ctx context.Context, client Client) (Client, error) {
	return u.repo.CreateClient(ctx, client)
}

// UpdateClientOption carries the fields a partial update may change.
// A nil field is left untouched.
type UpdateClientOption struct {
	Name   *string
	Email  *string
	Status *bool
}

func (o UpdateClientOption) IsZero() bool {
	return o.Name == nil && o.Email == nil && o.Status == nil
}

func (u Usecase) UpdateClient(ctx context.Context, id uint, opt UpdateClientOption) (Client, error) {
	if opt.IsZero() {
		// Nothing to change, but the caller still expects a 404 for an
		// unknown id and the current record otherwise.
		return u.repo.GetClientByID(ctx, id)
	}
	return u.repo.UpdateClient(ctx, id, opt)
}

// DeleteClient removes the client and every allocation it owns.
func (u Usecase) DeleteClient(ctx context.Context, id uint) error {
	return u.repo.DeleteClient(ctx, id)
}
