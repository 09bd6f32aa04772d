package service

import (
	"context"
	"errors"
	"testing"

	"shopease/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) GetProduct(ctx context.Context, id int) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) CreateProduct(ctx context.Context, product *model.InsertProduct) (*model.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, id int, partial *model.PartialProduct) (*model.Product, error) {
	args := m.Called(ctx, id, partial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func strPtr(s string) *string {
	return &s
}

func TestProductService_GetAll(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	testProducts := []model.Product{
		{ID: 1, Name: "Mouse", Price: "19.99", Image: "https://x/m.png", Description: "wireless mouse"},
		{ID: 2, Name: "Keyboard", Price: "49.99", Image: "https://x/k.png", Description: "mechanical keyboard"},
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("GetAllProducts", ctx).Return(testProducts, nil)

		svc := NewProductService(mockRepo, logger)
		products, err := svc.GetAll(ctx)

		require.NoError(t, err)
		assert.Equal(t, testProducts, products)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Repository error", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("GetAllProducts", ctx).Return(nil, errors.New("store failure"))

		svc := NewProductService(mockRepo, logger)
		products, err := svc.GetAll(ctx)

		assert.Error(t, err)
		assert.Nil(t, products)
		mockRepo.AssertExpectations(t)
	})
}

func TestProductService_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	testProduct := &model.Product{ID: 1, Name: "Mouse", Price: "19.99", Image: "https://x/m.png", Description: "wireless mouse"}

	tests := []struct {
		name        string
		id          int
		mockReturn  *model.Product
		mockError   error
		expectError error
	}{
		{
			name:       "Success",
			id:         1,
			mockReturn: testProduct,
		},
		{
			name:        "Not found",
			id:          999,
			mockReturn:  nil,
			expectError: model.ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			mockRepo.On("GetProduct", ctx, tt.id).Return(tt.mockReturn, tt.mockError)

			svc := NewProductService(mockRepo, logger)
			product, err := svc.GetByID(ctx, tt.id)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Nil(t, product)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn, product)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestProductService_Create(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Valid payload reaches the repository", func(t *testing.T) {
		req := &model.InsertProduct{
			Name:        "Mouse",
			Price:       "19.99",
			Image:       "https://x/y.png",
			Description: "wireless mouse",
		}
		created := &model.Product{ID: 6, Name: "Mouse", Price: "19.99", Image: "https://x/y.png", Description: "wireless mouse"}

		mockRepo := new(MockProductRepository)
		mockRepo.On("CreateProduct", ctx, req).Return(created, nil)

		svc := NewProductService(mockRepo, logger)
		product, err := svc.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, created, product)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Invalid payload never reaches the repository", func(t *testing.T) {
		req := &model.InsertProduct{
			Name:        "Mouse",
			Price:       "not-a-number",
			Image:       "https://x/y.png",
			Description: "wireless mouse",
		}

		mockRepo := new(MockProductRepository)

		svc := NewProductService(mockRepo, logger)
		product, err := svc.Create(ctx, req)

		require.Error(t, err)
		var verr *model.ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Nil(t, product)
		mockRepo.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})
}

func TestProductService_Update(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Partial update succeeds", func(t *testing.T) {
		req := &model.PartialProduct{Price: strPtr("249.99")}
		merged := &model.Product{ID: 1, Name: "Mouse", Price: "249.99", Image: "https://x/m.png", Description: "wireless mouse"}

		mockRepo := new(MockProductRepository)
		mockRepo.On("UpdateProduct", ctx, 1, req).Return(merged, nil)

		svc := NewProductService(mockRepo, logger)
		product, err := svc.Update(ctx, 1, req)

		require.NoError(t, err)
		assert.Equal(t, merged, product)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Unknown id maps to not found", func(t *testing.T) {
		req := &model.PartialProduct{Price: strPtr("249.99")}

		mockRepo := new(MockProductRepository)
		mockRepo.On("UpdateProduct", ctx, 999, req).Return(nil, nil)

		svc := NewProductService(mockRepo, logger)
		product, err := svc.Update(ctx, 999, req)

		assert.ErrorIs(t, err, model.ErrProductNotFound)
		assert.Nil(t, product)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Invalid partial never reaches the repository", func(t *testing.T) {
		req := &model.PartialProduct{Image: strPtr("not-a-url")}

		mockRepo := new(MockProductRepository)

		svc := NewProductService(mockRepo, logger)
		product, err := svc.Update(ctx, 1, req)

		require.Error(t, err)
		var verr *model.ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Nil(t, product)
		mockRepo.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestProductService_Delete(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name        string
		id          int
		mockReturn  bool
		expectError error
	}{
		{
			name:       "Success",
			id:         1,
			mockReturn: true,
		},
		{
			name:        "Not found",
			id:          999,
			mockReturn:  false,
			expectError: model.ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockProductRepository)
			mockRepo.On("DeleteProduct", ctx, tt.id).Return(tt.mockReturn, nil)

			svc := NewProductService(mockRepo, logger)
			err := svc.Delete(ctx, tt.id)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
