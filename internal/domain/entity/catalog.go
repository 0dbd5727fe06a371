package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category groups products. Products reference a category by name.
type Category struct {
	ID          uint
	Name        string
	Description string
}

// Product is a catalog item. ImageURL points at the media store; images are never kept in the database.
type Product struct {
	ID          uint
	Name        string
	Category    string
	Price       decimal.Decimal
	Unit        string
	Stock       int
	StockUnit   string
	Description string
	ImageURL    string
	Featured    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
