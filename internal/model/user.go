package model

// User represents a store account. Users are created once and never updated
// or deleted; no login flow is implemented against them.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// InsertUser represents the request payload for creating a user.
type InsertUser struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
