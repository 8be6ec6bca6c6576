package models

import (
	"time"

	"gorm.io/gorm"
)

// User customer account
type User struct {
	ID                 uint           `gorm:"primarykey" json:"id"`
	Name               string         `gorm:"type:varchar(120);not null" json:"name"`
	Email              string         `gorm:"uniqueIndex;not null" json:"email"`
	Phone              string         `gorm:"type:varchar(32)" json:"phone"`
	PasswordHash       string         `gorm:"not null" json:"-"`
	Status             string         `gorm:"default:'active'" json:"status"`
	TokenVersion       uint64         `gorm:"not null;default:0" json:"-"` // bumped on logout to revoke issued tokens
	TokenInvalidBefore *time.Time     `gorm:"index" json:"-"`
	LastLoginAt        *time.Time     `json:"last_login_at"`
	CreatedAt          time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName maps the model to its table.
func (User) TableName() string {
	return "users"
}
