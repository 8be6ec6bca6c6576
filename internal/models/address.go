package models

import (
	"time"

	"gorm.io/gorm"
)

// Address delivery address owned by a user
type Address struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"-"`
	Line      string         `gorm:"type:varchar(500);not null" json:"address"` // free-text street line
	City      string         `gorm:"type:varchar(120);not null" json:"city"`
	State     string         `gorm:"type:varchar(120);not null" json:"state"`
	Pincode   string         `gorm:"type:varchar(20);not null" json:"pincode"`
	Country   string         `gorm:"type:varchar(120)" json:"country,omitempty"`
	IsDefault bool           `gorm:"default:false;index" json:"isDefault"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName maps the model to its table.
func (Address) TableName() string {
	return "addresses"
}
