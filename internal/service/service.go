package service

import (
	"context"

	"shopease/internal/model"
	"shopease/internal/notify"
)

// ProductService defines operations for catalogue management.
type ProductService interface {
	// GetAll retrieves the full catalogue in insertion order.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id int) (*model.Product, error)

	// Create validates the payload and inserts a new product.
	Create(ctx context.Context, req *model.InsertProduct) (*model.Product, error)

	// Update validates the partial payload and merges it over the existing
	// product.
	Update(ctx context.Context, id int, req *model.PartialProduct) (*model.Product, error)

	// Delete removes a product by ID.
	Delete(ctx context.Context, id int) error
}

// OrderService defines operations for order placement and lookup.
type OrderService interface {
	// Create validates the payload and inserts a new order.
	Create(ctx context.Context, req *model.InsertOrder) (*model.Order, error)

	// GetAll retrieves all orders in insertion order.
	GetAll(ctx context.Context) ([]model.Order, error)

	// GetByID retrieves a single order by ID.
	GetByID(ctx context.Context, id int) (*model.Order, error)
}

// UserService defines operations for user accounts.
type UserService interface {
	// Create validates the payload and inserts a new user. Usernames are
	// unique.
	Create(ctx context.Context, req *model.InsertUser) (*model.User, error)

	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, id int) (*model.User, error)

	// GetByUsername retrieves the first user with the given username.
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

// OrderNotifier publishes order events to an out-of-band channel. It reports
// success or failure and never affects store state.
type OrderNotifier interface {
	SendOrder(data notify.OrderData) bool
	SendCancel(data notify.CancelData) bool
}
