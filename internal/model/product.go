package model

// Product represents an item in the storefront catalogue. Price is a decimal
// string so currency values survive serialization without rounding artifacts.
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// InsertProduct represents the request payload for creating a product.
type InsertProduct struct {
	Name        string `json:"name" validate:"required"`
	Price       string `json:"price" validate:"required,numeric"`
	Image       string `json:"image" validate:"required,url"`
	Description string `json:"description" validate:"required"`
}

// PartialProduct represents the request payload for a partial product update.
// Nil fields keep their prior values.
type PartialProduct struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Price       *string `json:"price,omitempty" validate:"omitempty,numeric"`
	Image       *string `json:"image,omitempty" validate:"omitempty,url"`
	Description *string `json:"description,omitempty" validate:"omitempty,min=1"`
}
