package usecase

import "context"

func New(repo Repository) Usecase {
	return Usecase{repo: repo}
}

// Repository is implemented by the database layer.
type Repository interface {
	Health() map[string]string
	Close() error

	ListClients(context.Context, ListClientsOption) ([]Client, int, error)
	GetClientByID(context.Context, uint) (Client, error)
	CreateClient(context.Context, Client) (Client, error)
	UpdateClient(context.Context, uint, UpdateClientOption) (Client, error)
	DeleteClient(context.Context, uint) error

	ListAssets(context.Context) ([]Asset, error)

	ListAllocations(context.Context, uint, ListAllocationsOption) ([]Allocation, int, error)
	CreateAllocation(context.Context, Allocation) (Allocation, error)
	UpdateAllocation(context.Context, uint, uint, int) (Allocation, error)
	DeleteAllocation(context.Context, uint, uint) error
}

type Usecase struct {
	repo Repository
}

func (u Usecase) Health() map[string]string {
	return u.repo.Health()
}

func (u Usecase) Close() error {
	return u.repo.Close()
}
