package entity

import "time"

// CartLine is the accumulated quantity of one product in one user's cart.
// ProductName is free text and is not checked against the catalog.
type CartLine struct {
	Email       string
	ProductName string
	Quantity    int
	UpdatedAt   time.Time
}
