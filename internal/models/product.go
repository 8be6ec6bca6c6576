package models

import (
	"time"

	"gorm.io/gorm"
)

// Product catalog item
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	CategoryID  uint           `gorm:"not null;index" json:"category_id"`
	Name        string         `gorm:"type:varchar(200);not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // base price, overridden by variation price when one is selected
	Images      StringArray    `gorm:"type:json" json:"images"`
	Stock       int            `gorm:"not null;default:0" json:"stock"`
	IsActive    bool           `gorm:"default:true;index" json:"is_active"`
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Category   *Category   `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Variations []Variation `gorm:"foreignKey:ProductID" json:"variation,omitempty"`
}

// TableName maps the model to its table.
func (Product) TableName() string {
	return "products"
}
