package service

import (
	"context"
	"testing"

	"shopease/internal/model"
	"shopease/internal/notify"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, order *model.InsertOrder) (*model.Order, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) GetOrder(ctx context.Context, id int) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

// MockNotifier is a mock implementation of OrderNotifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendOrder(data notify.OrderData) bool {
	args := m.Called(data)
	return args.Bool(0)
}

func (m *MockNotifier) SendCancel(data notify.CancelData) bool {
	args := m.Called(data)
	return args.Bool(0)
}

func validOrderRequest() *model.InsertOrder {
	return &model.InsertOrder{
		ProductID:       1,
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		CustomerPhone:   "1234567890",
		CustomerAddress: "42 Long Enough Street, Springfield",
		TotalAmount:     "299.99",
	}
}

func TestOrderService_Create(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Valid order is created", func(t *testing.T) {
		req := validOrderRequest()
		created := &model.Order{
			ID:              1,
			ProductID:       1,
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			CustomerAddress: req.CustomerAddress,
			TotalAmount:     req.TotalAmount,
		}

		mockOrders := new(MockOrderRepository)
		mockOrders.On("CreateOrder", ctx, req).Return(created, nil)
		mockProducts := new(MockProductRepository)

		svc := NewOrderService(mockOrders, mockProducts, nil, logger)
		order, err := svc.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, created, order)
		mockOrders.AssertExpectations(t)
	})

	t.Run("Invalid phone never reaches the repository", func(t *testing.T) {
		req := validOrderRequest()
		req.CustomerPhone = "12345"

		mockOrders := new(MockOrderRepository)
		mockProducts := new(MockProductRepository)

		svc := NewOrderService(mockOrders, mockProducts, nil, logger)
		order, err := svc.Create(ctx, req)

		require.Error(t, err)
		var verr *model.ValidationError
		assert.ErrorAs(t, err, &verr)
		assert.Nil(t, order)
		mockOrders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("Notifier receives product details", func(t *testing.T) {
		req := validOrderRequest()
		created := &model.Order{
			ID:              1,
			ProductID:       1,
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			CustomerAddress: req.CustomerAddress,
			TotalAmount:     req.TotalAmount,
		}
		product := &model.Product{ID: 1, Name: "Premium Wireless Headphones", Price: "299.99"}

		mockOrders := new(MockOrderRepository)
		mockOrders.On("CreateOrder", ctx, req).Return(created, nil)
		mockProducts := new(MockProductRepository)
		mockProducts.On("GetProduct", ctx, 1).Return(product, nil)

		mockNotifier := new(MockNotifier)
		mockNotifier.On("SendOrder", mock.MatchedBy(func(data notify.OrderData) bool {
			return data.ProductName == "Premium Wireless Headphones" &&
				data.ProductPrice == "299.99" &&
				data.CustomerName == "Jane Doe"
		})).Return(true)

		svc := NewOrderService(mockOrders, mockProducts, mockNotifier, logger)
		order, err := svc.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, created, order)
		mockNotifier.AssertExpectations(t)
	})

	t.Run("Notification failure does not fail order placement", func(t *testing.T) {
		req := validOrderRequest()
		created := &model.Order{ID: 1, ProductID: 1}

		mockOrders := new(MockOrderRepository)
		mockOrders.On("CreateOrder", ctx, req).Return(created, nil)
		mockProducts := new(MockProductRepository)
		mockProducts.On("GetProduct", ctx, mock.Anything).Return(nil, nil)

		mockNotifier := new(MockNotifier)
		mockNotifier.On("SendOrder", mock.Anything).Return(false)

		svc := NewOrderService(mockOrders, mockProducts, mockNotifier, logger)
		order, err := svc.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, created, order)
	})
}

func TestOrderService_GetAll(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	testOrders := []model.Order{
		{ID: 1, ProductID: 1, CustomerName: "Jane Doe", TotalAmount: "299.99"},
		{ID: 2, ProductID: 2, CustomerName: "John Doe", TotalAmount: "799.99"},
	}

	mockOrders := new(MockOrderRepository)
	mockOrders.On("GetAllOrders", ctx).Return(testOrders, nil)
	mockProducts := new(MockProductRepository)

	svc := NewOrderService(mockOrders, mockProducts, nil, logger)
	orders, err := svc.GetAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, testOrders, orders)
	mockOrders.AssertExpectations(t)
}

func TestOrderService_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		testOrder := &model.Order{ID: 1, ProductID: 1, CustomerName: "Jane Doe"}

		mockOrders := new(MockOrderRepository)
		mockOrders.On("GetOrder", ctx, 1).Return(testOrder, nil)
		mockProducts := new(MockProductRepository)

		svc := NewOrderService(mockOrders, mockProducts, nil, logger)
		order, err := svc.GetByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, testOrder, order)
	})

	t.Run("Not found", func(t *testing.T) {
		mockOrders := new(MockOrderRepository)
		mockOrders.On("GetOrder", ctx, 999).Return(nil, nil)
		mockProducts := new(MockProductRepository)

		svc := NewOrderService(mockOrders, mockProducts, nil, logger)
		order, err := svc.GetByID(ctx, 999)

		assert.ErrorIs(t, err, model.ErrOrderNotFound)
		assert.Nil(t, order)
	})
}
