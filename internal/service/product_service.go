package service

import (
	"context"
	"fmt"

	"shopease/internal/model"
	"shopease/internal/repository"
	"shopease/internal/schema"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// GetAll retrieves the full catalogue in insertion order.
func (s *productService) GetAll(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.GetAllProducts(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id int) (*model.Product, error) {
	product, err := s.productRepo.GetProduct(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Create validates the payload and inserts a new product.
func (s *productService) Create(ctx context.Context, req *model.InsertProduct) (*model.Product, error) {
	if err := schema.ValidateInsertProduct(req); err != nil {
		s.logger.Warn().Err(err).Msg("invalid product payload")
		return nil, err
	}

	product, err := s.productRepo.CreateProduct(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().Int("product_id", product.ID).Str("name", product.Name).Msg("product created")

	return product, nil
}

// Update validates the partial payload and merges it over the existing record.
func (s *productService) Update(ctx context.Context, id int, req *model.PartialProduct) (*model.Product, error) {
	if err := schema.ValidatePartialProduct(req); err != nil {
		s.logger.Warn().Err(err).Int("product_id", id).Msg("invalid product update payload")
		return nil, err
	}

	product, err := s.productRepo.UpdateProduct(ctx, id, req)
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int("product_id", id).Msg("product not found for update")
		return nil, model.ErrProductNotFound
	}

	s.logger.Info().Int("product_id", id).Msg("product updated")

	return product, nil
}

// Delete removes a product by ID.
func (s *productService) Delete(ctx context.Context, id int) error {
	deleted, err := s.productRepo.DeleteProduct(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if !deleted {
		s.logger.Debug().Int("product_id", id).Msg("product not found for delete")
		return model.ErrProductNotFound
	}

	s.logger.Info().Int("product_id", id).Msg("product deleted")

	return nil
}
