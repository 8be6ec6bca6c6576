package models

import (
	"time"

	"gorm.io/gorm"
)

// CartItem a line in a user's cart. The selected variation is referenced by
// stable ID and additionally snapshotted (weight/price/pieces) at add time,
// so a later reorder of the product's variation list cannot change what the
// customer picked.
type CartItem struct {
	ID              uint           `gorm:"primarykey" json:"_id"`
	UserID          uint           `gorm:"not null;index:idx_cart_user" json:"-"`
	ProductID       uint           `gorm:"not null;index" json:"-"`
	VariationID     *uint          `gorm:"index" json:"-"`
	VariationWeight string         `gorm:"type:varchar(60)" json:"-"`
	VariationPrice  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"-"`
	VariationPieces int            `gorm:"not null;default:0" json:"-"`
	Quantity        int            `gorm:"not null" json:"quantity"`
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName maps the model to its table.
func (CartItem) TableName() string {
	return "cart_items"
}

// VariationSnapshot is the denormalized variation copy embedded in cart and
// order responses.
type VariationSnapshot struct {
	Weight string `json:"weight"`
	Price  Money  `json:"price"`
	Pieces int    `json:"pcs"`
}

// Snapshot returns the variation copy taken when the line was added. Lines
// added without a variation fall back to the product's base price.
func (i CartItem) Snapshot() VariationSnapshot {
	snap := VariationSnapshot{
		Weight: i.VariationWeight,
		Price:  i.VariationPrice,
		Pieces: i.VariationPieces,
	}
	if i.VariationID == nil && i.Product != nil {
		snap.Price = i.Product.Price
	}
	return snap
}
