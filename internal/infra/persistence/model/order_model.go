package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderModel mirrors the 'orders' table. OrderData keeps the checkout payload and cart snapshot as JSONB.
// TotalAmount is unscaled numeric so a caller-supplied total is stored exactly.
type OrderModel struct {
	ID              uint            `gorm:"primaryKey"`
	OrderNumber     string          `gorm:"type:text;uniqueIndex;not null"`
	Email           string          `gorm:"type:text;not null;index"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric;not null"`
	DeliveryAddress string          `gorm:"type:text"`
	OrderData       datatypes.JSON  `gorm:"type:jsonb"`
	OrderDate       time.Time       `gorm:"not null;index"`
	PaymentMethod   string          `gorm:"type:text"`
	Status          string          `gorm:"type:varchar(20);not null;default:'Processing'"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// All lists every persistence model, in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&CategoryModel{},
		&ProductModel{},
		&CartLineModel{},
		&OrderModel{},
	}
}
