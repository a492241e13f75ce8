package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/VHAlvesS/caseAnka-backend/internal/usecase"
)

func TestListAllocations(t *testing.T) {
	asset := usecase.Asset{ID: 1, Name: "Ação XYZ", Price: 12.5}

	tests := []struct {
		name           string
		query          string
		setupMock      func(*MockService)
		expectedStatus int
		check          func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "returns allocations with asset details",
			setupMock: func(m *MockService) {
				m.On("ListAllocations", uint(5), usecase.ListAllocationsOption{Skip: 0, Limit: 10}).
					Return([]usecase.Allocation{
						{ID: 9, ClientID: 5, AssetID: 1, Quantity: 10, Asset: &asset},
					}, 1, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var res struct {
					Data []Allocation `json:"data"`
					Meta Meta         `json:"meta"`
				}
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
				assert.Len(t, res.Data, 1)
				if assert.NotNil(t, res.Data[0].Asset) {
					assert.Equal(t, "Ação XYZ", res.Data[0].Asset.Name)
					assert.Equal(t, 12.5, res.Data[0].Asset.Price)
				}
				assert.Equal(t, Meta{Page: 1, PerPage: 10, Total: 1, TotalPages: 1}, res.Meta)
			},
		},
		{
			name: "unknown client",
			setupMock: func(m *MockService) {
				m.On("ListAllocations", uint(5), usecase.ListAllocationsOption{Skip: 0, Limit: 10}).
					Return(nil, 0, usecase.ErrClientNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "rejects non-positive page",
			query:          "?page=0",
			setupMock:      func(m *MockService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)
			s := newTestServer(svc)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/clients/5/allocations"+tt.query, nil)
			rec := httptest.NewRecorder()
			ctx := e.NewContext(req, rec)
			ctx.SetPath("/clients/:id/allocations")
			ctx.SetParamNames("id")
			ctx.SetParamValues("5")

			assert.NoError(t, s.ListAllocations(ctx))
			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.check != nil {
				tt.check(t, rec)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestCreateAllocation(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
	}{
		{
			name: "creates allocation",
			body: `{"assetId":1,"quantity":10}`,
			setupMock: func(m *MockService) {
				m.On("CreateAllocation", usecase.Allocation{ClientID: 5, AssetID: 1, Quantity: 10}).
					Return(usecase.Allocation{ID: 9, ClientID: 5, AssetID: 1, Quantity: 10}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "duplicate pair conflicts",
			body: `{"assetId":1,"quantity":10}`,
			setupMock: func(m *MockService) {
				m.On("CreateAllocation", usecase.Allocation{ClientID: 5, AssetID: 1, Quantity: 10}).
					Return(usecase.Allocation{}, usecase.ErrAllocationExists)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "dangling reference",
			body: `{"assetId":99,"quantity":10}`,
			setupMock: func(m *MockService) {
				m.On("CreateAllocation", usecase.Allocation{ClientID: 5, AssetID: 99, Quantity: 10}).
					Return(usecase.Allocation{}, usecase.ErrReferenceNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "body cannot override the path client id",
			body: `{"assetId":1,"quantity":10,"id":42}`,
			setupMock: func(m *MockService) {
				m.On("CreateAllocation", usecase.Allocation{ClientID: 5, AssetID: 1, Quantity: 10}).
					Return(usecase.Allocation{ID: 9, ClientID: 5, AssetID: 1, Quantity: 10}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "rejects zero quantity",
			body:           `{"assetId":1,"quantity":0}`,
			setupMock:      func(m *MockService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "rejects negative quantity",
			body:           `{"assetId":1,"quantity":-3}`,
			setupMock:      func(m *MockService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)
			s := newTestServer(svc)

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/clients/5/allocations", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			ctx := e.NewContext(req, rec)
			ctx.SetPath("/clients/:id/allocations")
			ctx.SetParamNames("id")
			ctx.SetParamValues("5")

			assert.NoError(t, s.CreateAllocation(ctx))
			assert.Equal(t, tt.expectedStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestUpdateAllocation(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		check          func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "updates quantity in place",
			body: `{"quantity":5}`,
			setupMock: func(m *MockService) {
				m.On("UpdateAllocation", uint(5), uint(1), 5).
					Return(usecase.Allocation{ID: 9, ClientID: 5, AssetID: 1, Quantity: 5}, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var a Allocation
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &a))
				assert.Equal(t, 5, a.Quantity)
				assert.Equal(t, uint(9), a.ID)
			},
		},
		{
			name: "unknown pair",
			body: `{"quantity":5}`,
			setupMock: func(m *MockService) {
				m.On("UpdateAllocation", uint(5), uint(1), 5).
					Return(usecase.Allocation{}, usecase.ErrAllocationNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "body cannot override the path pair",
			body: `{"quantity":5,"assetId":99,"id":42}`,
			setupMock: func(m *MockService) {
				m.On("UpdateAllocation", uint(5), uint(1), 5).
					Return(usecase.Allocation{ID: 9, ClientID: 5, AssetID: 1, Quantity: 5}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "rejects zero quantity",
			body:           `{"quantity":0}`,
			setupMock:      func(m *MockService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)
			s := newTestServer(svc)

			e := echo.New()
			req := httptest.NewRequest(http.MethodPut, "/clients/5/allocations/1", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			ctx := e.NewContext(req, rec)
			ctx.SetPath("/clients/:id/allocations/:assetId")
			ctx.SetParamNames("id", "assetId")
			ctx.SetParamValues("5", "1")

			assert.NoError(t, s.UpdateAllocation(ctx))
			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.check != nil {
				tt.check(t, rec)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestDeleteAllocation(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*MockService)
		expectedStatus int
	}{
		{
			name: "deletes by composite key",
			setupMock: func(m *MockService) {
				m.On("DeleteAllocation", uint(5), uint(1)).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "unknown pair",
			setupMock: func(m *MockService) {
				m.On("DeleteAllocation", uint(5), uint(1)).Return(usecase.ErrAllocationNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)
			s := newTestServer(svc)

			e := echo.New()
			req := httptest.NewRequest(http.MethodDelete, "/clients/5/allocations/1", nil)
			rec := httptest.NewRecorder()
			ctx := e.NewContext(req, rec)
			ctx.SetPath("/clients/:id/allocations/:assetId")
			ctx.SetParamNames("id", "assetId")
			ctx.SetParamValues("5", "1")

			assert.NoError(t, s.DeleteAllocation(ctx))
			assert.Equal(t, tt.expectedStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}
