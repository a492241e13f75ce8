package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Health() map[string]string {
	args := m.Called()
	return args.Get(0).(map[string]string)
}

func (m *MockRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockRepository) ListClients(ctx context.Context, opt ListClientsOption) ([]Client, int, error) {
	args := m.Called(opt)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]Client), args.Int(1), args.Error(2)
}

func (m *MockRepository) GetClientByID(ctx context.Context, id uint) (Client, error) {
	args := m.Called(id)
	return args.Get(0).(Client), args.Error(1)
}

func (m *MockRepository) CreateClient(ctx context.Context, c Client) (Client, error) {
	args := m.Called(c)
	return args.Get(0).(Client), args.Error(1)
}

func (m *MockRepository) UpdateClient(ctx context.Context, id uint, opt UpdateClientOption) (Client, error) {
	args := m.Called(id, opt)
	return args.Get(0).(Client), args.Error(1)
}

func (m *MockRepository) DeleteClient(ctx context.Context, id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockRepository) ListAssets(ctx context.Context) ([]Asset, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Asset), args.Error(1)
}

func (m *MockRepository) ListAllocations(ctx context.Context, clientID uint, opt ListAllocationsOption) ([]Allocation, int, error) {
	args := m.Called(clientID, opt)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]Allocation), args.Int(1), args.Error(2)
}

func (m *MockRepository) CreateAllocation(ctx context.Context, a Allocation) (Allocation, error) {
	args := m.Called(a)
	return args.Get(0).(Allocation), args.Error(1)
}

func (m *MockRepository) UpdateAllocation(ctx context.Context, clientID, assetID uint, quantity int) (Allocation, error) {
	args := m.Called(clientID, assetID, quantity)
	return args.Get(0).(Allocation), args.Error(1)
}

func (m *MockRepository) DeleteAllocation(ctx context.Context, clientID, assetID uint) error {
	args := m.Called(clientID, assetID)
	return args.Error(0)
}
