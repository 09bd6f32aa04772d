package model

// Order represents a customer order placed through checkout. Notes is always
// serialized, as JSON null when the customer left it blank.
type Order struct {
	ID              int     `json:"id"`
	ProductID       int     `json:"productId"`
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerAddress string  `json:"customerAddress"`
	Notes           *string `json:"notes"`
	TotalAmount     string  `json:"totalAmount"`
}

// InsertOrder represents the request payload for placing an order.
// ProductID is not checked against the catalogue; orphan orders are allowed.
type InsertOrder struct {
	ProductID       int     `json:"productId" validate:"required"`
	CustomerName    string  `json:"customerName" validate:"required,min=2"`
	CustomerEmail   string  `json:"customerEmail" validate:"required,email"`
	CustomerPhone   string  `json:"customerPhone" validate:"required,len=10,number"`
	CustomerAddress string  `json:"customerAddress" validate:"required,min=10"`
	Notes           *string `json:"notes,omitempty"`
	TotalAmount     string  `json:"totalAmount" validate:"required,numeric"`
}
