package repository

import (
	"context"

	"shopease/internal/model"
)

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	// CreateUser assigns the next user ID, inserts the record and returns it.
	CreateUser(ctx context.Context, user *model.InsertUser) (*model.User, error)

	// GetUser retrieves a user by ID. Returns nil when the ID is unknown.
	GetUser(ctx context.Context, id int) (*model.User, error)

	// GetUserByUsername retrieves the first user with the given username in
	// insertion order. Returns nil when no user matches.
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAllProducts retrieves all products in insertion order.
	GetAllProducts(ctx context.Context) ([]model.Product, error)

	// GetProduct retrieves a product by ID. Returns nil when the ID is unknown.
	GetProduct(ctx context.Context, id int) (*model.Product, error)

	// CreateProduct assigns the next product ID, inserts the record and
	// returns it.
	CreateProduct(ctx context.Context, product *model.InsertProduct) (*model.Product, error)

	// UpdateProduct merges the non-nil fields of partial over the existing
	// record, leaving the ID and unset fields unchanged, and returns the
	// merged record. Returns nil when the ID is unknown.
	UpdateProduct(ctx context.Context, id int, partial *model.PartialProduct) (*model.Product, error)

	// DeleteProduct removes a product. It reports whether a record existed.
	// The ID is never reused by a later CreateProduct.
	DeleteProduct(ctx context.Context, id int) (bool, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// CreateOrder assigns the next order ID, inserts the record and returns
	// it. Omitted notes are coerced to an explicit null. The referenced
	// product is not checked for existence.
	CreateOrder(ctx context.Context, order *model.InsertOrder) (*model.Order, error)

	// GetAllOrders retrieves all orders in insertion order.
	GetAllOrders(ctx context.Context) ([]model.Order, error)

	// GetOrder retrieves an order by ID. Returns nil when the ID is unknown.
	GetOrder(ctx context.Context, id int) (*model.Order, error)
}
