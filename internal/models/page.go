package models

import (
	"time"

	"gorm.io/gorm"
)

// Page static informational page (about, terms, privacy, cancellation
// policy) served by slug.
type Page struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`
	Title       string         `gorm:"type:varchar(200);not null" json:"title"`
	Body        string         `gorm:"type:text" json:"body"`
	IsPublished bool           `gorm:"default:true;index" json:"is_published"`
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName maps the model to its table.
func (Page) TableName() string {
	return "pages"
}
