package model

import "time"

// CartLineModel mirrors the 'cart_lines' table. (email, product_name) is unique so the
// add-to-cart upsert can merge quantities. Both are free text and carry no length limit.
type CartLineModel struct {
	ID          uint   `gorm:"primaryKey"`
	Email       string `gorm:"type:text;not null;uniqueIndex:idx_cart_lines_email_product,priority:1"`
	ProductName string `gorm:"type:text;not null;uniqueIndex:idx_cart_lines_email_product,priority:2"`
	Quantity    int    `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartLineModel) TableName() string {
	return "cart_lines"
}
