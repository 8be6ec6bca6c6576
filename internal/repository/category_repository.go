package repository

import (
	"context"

	"github.com/vruksha/storefront/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository category persistence
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	ListAll(ctx context.Context) ([]models.Category, error)
	ListRoots(ctx context.Context, limit int) ([]models.Category, error)
	ChildIDs(ctx context.Context, parentID uint) ([]uint, error)
}

// GormCategoryRepository gorm-backed implementation
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a category repository.
func NewCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// Create inserts a category.
func (r *GormCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// GetByID loads a category by primary key.
func (r *GormCategoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// ListAll returns every category in display order.
func (r *GormCategoryRepository) ListAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Order("sort_order ASC, id ASC").
		Find(&categories).Error
	return categories, err
}

// ListRoots returns top-level categories, optionally capped.
func (r *GormCategoryRepository) ListRoots(ctx context.Context, limit int) ([]models.Category, error) {
	var categories []models.Category
	query := r.db.WithContext(ctx).
		Where("parent_id IS NULL").
		Order("sort_order ASC, id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&categories).Error
	return categories, err
}

// ChildIDs returns the IDs of a category's direct children.
func (r *GormCategoryRepository) ChildIDs(ctx context.Context, parentID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.Category{}).
		Where("parent_id = ?", parentID).
		Pluck("id", &ids).Error
	return ids, err
}
