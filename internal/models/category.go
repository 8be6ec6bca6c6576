package models

import (
	"time"

	"gorm.io/gorm"
)

// Category product category. ParentID is nil for root categories; the
// catalog only nests two levels deep (root, child).
type Category struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"type:varchar(120);not null" json:"name"`
	Icon      string         `gorm:"type:varchar(500)" json:"icon,omitempty"`
	ParentID  *uint          `gorm:"index" json:"parent"`
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName maps the model to its table.
func (Category) TableName() string {
	return "categories"
}
