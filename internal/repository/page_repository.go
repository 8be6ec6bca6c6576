package repository

import (
	"context"

	"github.com/vruksha/storefront/internal/models"

	"gorm.io/gorm"
)

// PageRepository static-page persistence
type PageRepository interface {
	Create(ctx context.Context, page *models.Page) error
	GetBySlug(ctx context.Context, slug string) (*models.Page, error)
	ListPublished(ctx context.Context) ([]models.Page, error)
}

// GormPageRepository gorm-backed implementation
type GormPageRepository struct {
	db *gorm.DB
}

// NewPageRepository creates a page repository.
func NewPageRepository(db *gorm.DB) *GormPageRepository {
	return &GormPageRepository{db: db}
}

// Create inserts a page.
func (r *GormPageRepository) Create(ctx context.Context, page *models.Page) error {
	return r.db.WithContext(ctx).Create(page).Error
}

// GetBySlug loads a published page by slug.
func (r *GormPageRepository) GetBySlug(ctx context.Context, slug string) (*models.Page, error) {
	var page models.Page
	err := r.db.WithContext(ctx).
		Where("slug = ? AND is_published = ?", slug, true).
		First(&page).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// ListPublished returns all published pages in display order.
func (r *GormPageRepository) ListPublished(ctx context.Context) ([]models.Page, error) {
	var pages []models.Page
	err := r.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("sort_order ASC, id ASC").
		Find(&pages).Error
	return pages, err
}
