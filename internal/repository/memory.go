package repository

import (
	"context"
	"sort"
	"sync"

	"shopease/internal/model"

	"github.com/rs/zerolog"
)

// MemoryStore is the authoritative in-memory source of truth for all three
// entity families. IDs are assigned from per-family counters starting at 1
// and are never reused, even after deletion. Requests are served on parallel
// goroutines, so every access goes through the mutex: ID assignment and
// insertion are atomic as a pair.
//
// Nothing survives a process restart; the catalogue is re-seeded with a
// fixed set of sample products on construction.
type MemoryStore struct {
	mu sync.RWMutex

	users    map[int]model.User
	products map[int]model.Product
	orders   map[int]model.Order

	nextUserID    int
	nextProductID int
	nextOrderID   int

	logger zerolog.Logger
}

// NewMemoryStore creates a store pre-seeded with the sample catalogue, so a
// freshly started system always has a non-empty product list.
func NewMemoryStore(logger zerolog.Logger) *MemoryStore {
	s := &MemoryStore{
		users:         make(map[int]model.User),
		products:      make(map[int]model.Product),
		orders:        make(map[int]model.Order),
		nextUserID:    1,
		nextProductID: 1,
		nextOrderID:   1,
		logger:        logger.With().Str("repository", "memory").Logger(),
	}

	s.seedProducts()

	return s
}

// seedProducts inserts the fixed sample catalogue, ids 1 through 5.
func (s *MemoryStore) seedProducts() {
	samples := []model.InsertProduct{
		{
			Name:        "Premium Wireless Headphones",
			Price:       "299.99",
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=250",
			Description: "High-quality wireless headphones with noise cancellation and premium sound quality. Experience crystal-clear audio with up to 30 hours of battery life.",
		},
		{
			Name:        "Latest Smartphone",
			Price:       "799.99",
			Image:       "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=250",
			Description: "Latest smartphone with advanced camera, fast processor, and long-lasting battery. Features 5G connectivity and stunning display.",
		},
		{
			Name:        "Professional Laptop",
			Price:       "1299.99",
			Image:       "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=250",
			Description: "High-performance laptop perfect for work, gaming, and creative tasks. Powerful processor and stunning graphics.",
		},
		{
			Name:        "Smart Fitness Watch",
			Price:       "399.99",
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=250",
			Description: "Advanced fitness tracking, heart rate monitoring, and smart notifications. Track your health and stay connected.",
		},
		{
			Name:        "Portable Bluetooth Speaker",
			Price:       "149.99",
			Image:       "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=250",
			Description: "Waterproof portable speaker with 360-degree sound and long battery life. Perfect for outdoor adventures.",
		},
	}

	for _, sample := range samples {
		id := s.nextProductID
		s.nextProductID++
		s.products[id] = model.Product{
			ID:          id,
			Name:        sample.Name,
			Price:       sample.Price,
			Image:       sample.Image,
			Description: sample.Description,
		}
	}

	s.logger.Debug().Int("count", len(samples)).Msg("seeded sample catalogue")
}

// CreateUser assigns the next user ID and inserts the record.
func (s *MemoryStore) CreateUser(ctx context.Context, insert *model.InsertUser) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextUserID
	s.nextUserID++

	user := model.User{
		ID:       id,
		Username: insert.Username,
		Password: insert.Password,
	}
	s.users[id] = user

	s.logger.Debug().Int("user_id", id).Str("username", user.Username).Msg("user created")

	return &user, nil
}

// GetUser retrieves a user by ID.
func (s *MemoryStore) GetUser(ctx context.Context, id int) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// GetUserByUsername scans users in insertion order and returns the first match.
func (s *MemoryStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedKeys(s.users) {
		if user := s.users[id]; user.Username == username {
			return &user, nil
		}
	}
	return nil, nil
}

// GetAllProducts retrieves all products in insertion order.
func (s *MemoryStore) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]model.Product, 0, len(s.products))
	for _, id := range sortedKeys(s.products) {
		products = append(products, s.products[id])
	}
	return products, nil
}

// GetProduct retrieves a product by ID.
func (s *MemoryStore) GetProduct(ctx context.Context, id int) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

// CreateProduct assigns the next product ID and inserts the record.
func (s *MemoryStore) CreateProduct(ctx context.Context, insert *model.InsertProduct) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextProductID
	s.nextProductID++

	product := model.Product{
		ID:          id,
		Name:        insert.Name,
		Price:       insert.Price,
		Image:       insert.Image,
		Description: insert.Description,
	}
	s.products[id] = product

	s.logger.Debug().Int("product_id", id).Str("name", product.Name).Msg("product created")

	return &product, nil
}

// UpdateProduct merges the non-nil fields of partial over the existing record.
func (s *MemoryStore) UpdateProduct(ctx context.Context, id int, partial *model.PartialProduct) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return nil, nil
	}

	if partial.Name != nil {
		product.Name = *partial.Name
	}
	if partial.Price != nil {
		product.Price = *partial.Price
	}
	if partial.Image != nil {
		product.Image = *partial.Image
	}
	if partial.Description != nil {
		product.Description = *partial.Description
	}

	s.products[id] = product

	s.logger.Debug().Int("product_id", id).Msg("product updated")

	return &product, nil
}

// DeleteProduct removes a product and reports whether it existed. The ID
// counter is untouched, so deleted IDs are never reassigned.
func (s *MemoryStore) DeleteProduct(ctx context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return false, nil
	}
	delete(s.products, id)

	s.logger.Debug().Int("product_id", id).Msg("product deleted")

	return true, nil
}

// CreateOrder assigns the next order ID and inserts the record. Omitted
// notes are stored as an explicit null. The referenced product is not
// checked for existence; referential integrity is the caller's concern.
func (s *MemoryStore) CreateOrder(ctx context.Context, insert *model.InsertOrder) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextOrderID
	s.nextOrderID++

	// Copy notes so the stored record does not alias caller memory.
	var notes *string
	if insert.Notes != nil {
		n := *insert.Notes
		notes = &n
	}

	order := model.Order{
		ID:              id,
		ProductID:       insert.ProductID,
		CustomerName:    insert.CustomerName,
		CustomerEmail:   insert.CustomerEmail,
		CustomerPhone:   insert.CustomerPhone,
		CustomerAddress: insert.CustomerAddress,
		Notes:           notes,
		TotalAmount:     insert.TotalAmount,
	}
	s.orders[id] = order

	s.logger.Debug().Int("order_id", id).Int("product_id", order.ProductID).Msg("order created")

	return &order, nil
}

// GetAllOrders retrieves all orders in insertion order.
func (s *MemoryStore) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]model.Order, 0, len(s.orders))
	for _, id := range sortedKeys(s.orders) {
		orders = append(orders, s.orders[id])
	}
	return orders, nil
}

// GetOrder retrieves an order by ID.
func (s *MemoryStore) GetOrder(ctx context.Context, id int) (*model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	return &order, nil
}

// sortedKeys returns map keys in ascending order. IDs only ever grow, so
// ascending ID order is insertion order.
func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
