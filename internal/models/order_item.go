package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem product snapshot inside an order, copied from the cart line at
// checkout. Independent of later catalog changes.
type OrderItem struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	OrderID         uint           `gorm:"index;not null" json:"order_id"`
	ProductID       uint           `gorm:"index;not null" json:"product_id"`
	ProductName     string         `gorm:"type:varchar(200);not null" json:"name"`
	VariationWeight string         `gorm:"type:varchar(60)" json:"weight,omitempty"`
	VariationPieces int            `gorm:"not null;default:0" json:"pcs,omitempty"`
	UnitPrice       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`
	Quantity        int            `gorm:"not null" json:"quantity"`
	TotalPrice      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"`
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName maps the model to its table.
func (OrderItem) TableName() string {
	return "order_items"
}
