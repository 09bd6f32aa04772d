package service

import (
	"context"
	"fmt"

	"shopease/internal/model"
	"shopease/internal/notify"
	"shopease/internal/repository"
	"shopease/internal/schema"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	notifier    OrderNotifier
	logger      zerolog.Logger
}

// NewOrderService creates a new order service. notifier may be nil, in which
// case order notifications are skipped.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	notifier OrderNotifier,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		notifier:    notifier,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// Create validates the payload and inserts a new order. The referenced
// product is intentionally not checked for existence, matching the
// permissive checkout behaviour: the storefront UI only offers products
// that exist, and a stale reference still produces a valid order.
func (s *orderService) Create(ctx context.Context, req *model.InsertOrder) (*model.Order, error) {
	if err := schema.ValidateInsertOrder(req); err != nil {
		s.logger.Warn().Err(err).Msg("invalid order payload")
		return nil, err
	}

	order, err := s.orderRepo.CreateOrder(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Int("order_id", order.ID).
		Int("product_id", order.ProductID).
		Msg("order created")

	s.notifyOrder(ctx, order)

	return order, nil
}

// notifyOrder sends the new-order notification. Failures are logged and
// swallowed; notifications never affect the outcome of order placement.
func (s *orderService) notifyOrder(ctx context.Context, order *model.Order) {
	if s.notifier == nil {
		return
	}

	data := notify.OrderData{
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.CustomerEmail,
		CustomerPhone:   order.CustomerPhone,
		CustomerAddress: order.CustomerAddress,
		Notes:           order.Notes,
	}

	// Orphan orders still notify, just without product details.
	product, err := s.productRepo.GetProduct(ctx, order.ProductID)
	if err == nil && product != nil {
		data.ProductName = product.Name
		data.ProductPrice = product.Price
	}

	if !s.notifier.SendOrder(data) {
		s.logger.Warn().Int("order_id", order.ID).Msg("order notification failed")
	}
}

// GetAll retrieves all orders in insertion order.
func (s *orderService) GetAll(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.GetAllOrders(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all orders")
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	s.logger.Debug().Int("count", len(orders)).Msg("retrieved orders")

	return orders, nil
}

// GetByID retrieves a single order by ID.
func (s *orderService) GetByID(ctx context.Context, id int) (*model.Order, error) {
	order, err := s.orderRepo.GetOrder(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int("order_id", id).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		s.logger.Debug().Int("order_id", id).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	return order, nil
}
