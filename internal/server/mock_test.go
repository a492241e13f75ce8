package server

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/VHAlvesS/caseAnka-backend/internal/usecase"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Health() map[string]string {
	args := m.Called()
	return args.Get(0).(map[string]string)
}

func (m *MockService) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockService) ListClients(ctx context.Context, opt usecase.ListClientsOption) ([]usecase.Client, int, error) {
	args := m.Called(opt)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]usecase.Client), args.Int(1), args.Error(2)
}

func (m *MockService) CreateClient(ctx context.Context, c usecase.Client) (usecase.Client, error) {
	args := m.Called(c)
	return args.Get(0).(usecase.Client), args.Error(1)
}

func (m *MockService) UpdateClient(ctx context.Context, id uint, opt usecase.UpdateClientOption) (usecase.Client, error) {
	args := m.Called(id, opt)
	return args.Get(0).(usecase.Client), args.Error(1)
}

func (m *MockService) DeleteClient(ctx context.Context, id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockService) ListAssets(ctx context.Context) ([]usecase.Asset, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]usecase.Asset), args.Error(1)
}

func (m *MockService) ListAllocations(ctx context.Context, clientID uint, opt usecase.ListAllocationsOption) ([]usecase.Allocation, int, error) {
	args := m.Called(clientID, opt)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]usecase.Allocation), args.Int(1), args.Error(2)
}

func (m *MockService) CreateAllocation(ctx context.Context, a usecase.Allocation) (usecase.Allocation, error) {
	args := m.Called(a)
	return args.Get(0).(usecase.Allocation), args.Error(1)
}

func (m *MockService) UpdateAllocation(ctx context.Context, clientID, assetID uint, quantity int) (usecase.Allocation, error) {
	args := m.Called(clientID, assetID, quantity)
	return args.Get(0).(usecase.Allocation), args.Error(1)
}

func (m *MockService) DeleteAllocation(ctx context.Context, clientID, assetID uint) error {
	args := m.Called(clientID, assetID)
	return args.Error(0)
}

func newTestServer(svc Service) *Server {
	return &Server{
		server:    svc,
		validator: newValidator(),
	}
}
