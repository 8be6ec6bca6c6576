package models

import (
	"time"

	"gorm.io/gorm"
)

// Variation purchasable pack size of a product (weight label, own price,
// piece count). Ordered by SortOrder, which also defines the positional
// index legacy clients send on cart add.
type Variation struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	ProductID uint           `gorm:"not null;index" json:"-"`
	Weight    string         `gorm:"type:varchar(60);not null" json:"weight"`
	Price     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	Pieces    int            `gorm:"not null;default:1" json:"pcs"`
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName maps the model to its table.
func (Variation) TableName() string {
	return "variations"
}
