package repository

import (
	"context"
	"time"

	"github.com/vruksha/storefront/internal/models"

	"gorm.io/gorm"
)

// SliderRepository promotional banner persistence
type SliderRepository interface {
	Create(ctx context.Context, slider *models.Slider) error
	GetByID(ctx context.Context, id uint) (*models.Slider, error)
	List(ctx context.Context, filter SliderListFilter) ([]models.Slider, error)
}

// GormSliderRepository gorm-backed implementation
type GormSliderRepository struct {
	db *gorm.DB
}

// NewSliderRepository creates a slider repository.
func NewSliderRepository(db *gorm.DB) *GormSliderRepository {
	return &GormSliderRepository{db: db}
}

// Create inserts a slider.
func (r *GormSliderRepository) Create(ctx context.Context, slider *models.Slider) error {
	return r.db.WithContext(ctx).Create(slider).Error
}

// GetByID loads a slider by primary key.
func (r *GormSliderRepository) GetByID(ctx context.Context, id uint) (*models.Slider, error) {
	var slider models.Slider
	if err := r.db.WithContext(ctx).First(&slider, id).Error; err != nil {
		return nil, err
	}
	return &slider, nil
}

// List returns sliders in display order. ActiveOnly also applies the
// start/end scheduling window.
func (r *GormSliderRepository) List(ctx context.Context, filter SliderListFilter) ([]models.Slider, error) {
	query := r.db.WithContext(ctx).Model(&models.Slider{})
	if filter.ActiveOnly {
		now := time.Now()
		query = query.
			Where("is_active = ?", true).
			Where("start_at IS NULL OR start_at <= ?", now).
			Where("end_at IS NULL OR end_at >= ?", now)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	var sliders []models.Slider
	err := query.Order("sort_order ASC, id ASC").Find(&sliders).Error
	return sliders, err
}
