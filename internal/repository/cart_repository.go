package repository

import (
	"context"

	"github.com/vruksha/storefront/internal/models"

	"gorm.io/gorm"
)

// CartRepository cart persistence
type CartRepository interface {
	Create(ctx context.Context, item *models.CartItem) error
	GetForUser(ctx context.Context, id, userID uint) (*models.CartItem, error)
	FindLine(ctx context.Context, userID, productID uint, variationID *uint) (*models.CartItem, error)
	ListByUser(ctx context.Context, userID uint) ([]models.CartItem, error)
	UpdateQuantity(ctx context.Context, id uint, quantity int) error
	Delete(ctx context.Context, id, userID uint) error
	ClearUser(ctx context.Context, tx *gorm.DB, userID uint) error
}

// GormCartRepository gorm-backed implementation
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a cart repository.
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Create inserts a cart line.
func (r *GormCartRepository) Create(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// GetForUser loads a cart line only when the user owns it.
func (r *GormCartRepository) GetForUser(ctx context.Context, id, userID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("id = ? AND user_id = ?", id, userID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindLine locates an existing line for the same product and variation so
// repeated adds merge instead of duplicating.
func (r *GormCartRepository) FindLine(ctx context.Context, userID, productID uint, variationID *uint) (*models.CartItem, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID)
	if variationID == nil {
		query = query.Where("variation_id IS NULL")
	} else {
		query = query.Where("variation_id = ?", *variationID)
	}
	var item models.CartItem
	if err := query.First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByUser returns the user's cart lines with products preloaded, oldest
// first.
func (r *GormCartRepository) ListByUser(ctx context.Context, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

// UpdateQuantity sets a line's quantity.
func (r *GormCartRepository) UpdateQuantity(ctx context.Context, id uint, quantity int) error {
	return r.db.WithContext(ctx).Model(&models.CartItem{}).
		Where("id = ?", id).
		Update("quantity", quantity).Error
}

// Delete removes a user-owned cart line.
func (r *GormCartRepository) Delete(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ClearUser empties the user's cart inside the caller's transaction, so a
// checkout that fails after the order write does not lose the cart.
func (r *GormCartRepository) ClearUser(ctx context.Context, tx *gorm.DB, userID uint) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartItem{}).Error
}
