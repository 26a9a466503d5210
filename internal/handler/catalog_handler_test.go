package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tillpoint/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCatalogService is a mock implementation of CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) AddProduct(name string, price decimal.Decimal, quantity int) error {
	args := m.Called(name, price, quantity)
	return args.Error(0)
}

func (m *MockCatalogService) FindExact(name string) (*model.Product, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogService) Search(substring string) []*model.Product {
	args := m.Called(substring)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*model.Product)
}

func (m *MockCatalogService) ListAll() []*model.Product {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*model.Product)
}

func (m *MockCatalogService) Reprice(name string, newPrice decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(name, newPrice)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockCatalogService) Restock(name string, delta int) (int, error) {
	args := m.Called(name, delta)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalogService) LowStock(threshold int) []*model.Product {
	args := m.Called(threshold)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*model.Product)
}

func testProducts() []*model.Product {
	return []*model.Product{
		{Name: "Rice", Price: decimal.RequireFromString("62.50"), Quantity: 35},
		{Name: "C2", Price: decimal.RequireFromString("45.00"), Quantity: 3},
	}
}

func TestCatalogHandler_List(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		method         string
		queryParams    string
		setupMock      func(*MockCatalogService)
		expectedStatus int
		expectedCount  int
	}{
		{
			name:        "List all without query",
			method:      http.MethodGet,
			queryParams: "",
			setupMock: func(m *MockCatalogService) {
				m.On("ListAll").Return(testProducts())
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:        "Search with query",
			method:      http.MethodGet,
			queryParams: "?q=rice",
			setupMock: func(m *MockCatalogService) {
				m.On("Search", "rice").Return(testProducts()[:1])
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name:        "Search with no matches returns empty array",
			method:      http.MethodGet,
			queryParams: "?q=zzz",
			setupMock: func(m *MockCatalogService) {
				m.On("Search", "zzz").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodDelete,
			queryParams:    "",
			setupMock:      func(m *MockCatalogService) {},
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCatalogService)
			tt.setupMock(mockService)
			handler := NewCatalogHandler(mockService, 10, logger)

			req := httptest.NewRequest(tt.method, "/api/products"+tt.queryParams, nil)
			w := httptest.NewRecorder()

			handler.List(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var products []model.Product
				require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
				assert.Len(t, products, tt.expectedCount)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestCatalogHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockCatalogService)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"name": "Rice", "price": 62.50, "quantity": 35}`,
			setupMock: func(m *MockCatalogService) {
				m.On("AddProduct", "Rice", mock.Anything, 35).Return(nil)
				m.On("FindExact", "Rice").Return(testProducts()[0], nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Duplicate name",
			body: `{"name": "Rice", "price": 62.50, "quantity": 35}`,
			setupMock: func(m *MockCatalogService) {
				m.On("AddProduct", "Rice", mock.Anything, 35).
					Return(&model.DuplicateNameError{Name: "Rice"})
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Invalid input",
			body: `{"name": "", "price": 1.00, "quantity": 1}`,
			setupMock: func(m *MockCatalogService) {
				m.On("AddProduct", "", mock.Anything, 1).Return(model.ErrInvalidName)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid JSON",
			body:           `{invalid`,
			setupMock:      func(m *MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCatalogService)
			tt.setupMock(mockService)
			handler := NewCatalogHandler(mockService, 10, logger)

			req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestCatalogHandler_GetByName(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		path           string
		setupMock      func(*MockCatalogService)
		expectedStatus int
	}{
		{
			name: "Success",
			path: "/api/products/Rice",
			setupMock: func(m *MockCatalogService) {
				m.On("FindExact", "Rice").Return(testProducts()[0], nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "URL-escaped name",
			path: "/api/products/Pancit%20Canton",
			setupMock: func(m *MockCatalogService) {
				m.On("FindExact", "Pancit Canton").
					Return(&model.Product{Name: "Pancit Canton"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Not found",
			path: "/api/products/Beans",
			setupMock: func(m *MockCatalogService) {
				m.On("FindExact", "Beans").Return(nil, model.ErrProductNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCatalogService)
			tt.setupMock(mockService)
			handler := NewCatalogHandler(mockService, 10, logger)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			handler.GetByName(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestCatalogHandler_Reprice(t *testing.T) {
	logger := zerolog.Nop()
	mockService := new(MockCatalogService)
	mockService.On("Reprice", "Rice", mock.Anything).
		Return(decimal.RequireFromString("62.50"), nil)
	handler := NewCatalogHandler(mockService, 10, logger)

	req := httptest.NewRequest(http.MethodPut, "/api/products/Rice/price",
		strings.NewReader(`{"price": 70.00}`))
	w := httptest.NewRecorder()

	handler.Reprice(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "62.50", resp["oldPrice"])
	assert.Equal(t, "70.00", resp["newPrice"])
	mockService.AssertExpectations(t)
}

func TestCatalogHandler_Restock(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockCatalogService)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"delta": 7}`,
			setupMock: func(m *MockCatalogService) {
				m.On("Restock", "C2", 7).Return(10, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Negative delta rejected",
			body: `{"delta": -7}`,
			setupMock: func(m *MockCatalogService) {
				m.On("Restock", "C2", -7).Return(0, model.ErrInvalidRestock)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCatalogService)
			tt.setupMock(mockService)
			handler := NewCatalogHandler(mockService, 10, logger)

			req := httptest.NewRequest(http.MethodPut, "/api/products/C2/stock",
				strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.Restock(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestCatalogHandler_LowStock(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		queryParams    string
		setupMock      func(*MockCatalogService)
		expectedStatus int
	}{
		{
			name:        "Default threshold",
			queryParams: "",
			setupMock: func(m *MockCatalogService) {
				m.On("LowStock", 10).Return(testProducts()[1:])
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "Custom threshold",
			queryParams: "?threshold=50",
			setupMock: func(m *MockCatalogService) {
				m.On("LowStock", 50).Return(testProducts())
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid threshold",
			queryParams:    "?threshold=abc",
			setupMock:      func(m *MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCatalogService)
			tt.setupMock(mockService)
			handler := NewCatalogHandler(mockService, 10, logger)

			req := httptest.NewRequest(http.MethodGet, "/api/products/low-stock"+tt.queryParams, nil)
			w := httptest.NewRecorder()

			handler.LowStock(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}
