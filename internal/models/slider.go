package models

import (
	"time"

	"gorm.io/gorm"
)

// Slider home-page promotional banner
type Slider struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	Image         string         `gorm:"type:varchar(500);not null" json:"image"`
	Title         string         `gorm:"type:varchar(200)" json:"title,omitempty"`
	Subtitle      string         `gorm:"type:varchar(500)" json:"subtitle,omitempty"`
	ButtonText    string         `gorm:"type:varchar(60)" json:"buttonText,omitempty"`
	ButtonLink    string         `gorm:"type:varchar(500)" json:"buttonLink,omitempty"`
	ButtonVariant string         `gorm:"type:varchar(30)" json:"buttonVariant,omitempty"`
	IsActive      bool           `gorm:"default:true;index" json:"is_active"`
	StartAt       *time.Time     `gorm:"index" json:"start_at,omitempty"`
	EndAt         *time.Time     `gorm:"index" json:"end_at,omitempty"`
	SortOrder     int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName maps the model to its table.
func (Slider) TableName() string {
	return "sliders"
}
