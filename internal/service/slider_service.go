package service

import (
	"context"
	"errors"

	"github.com/vruksha/storefront/internal/constants"
	"github.com/vruksha/storefront/internal/models"
	"github.com/vruksha/storefront/internal/repository"

	"gorm.io/gorm"
)

// SliderService home-page banner queries
type SliderService struct {
	sliders repository.SliderRepository
}

// NewSliderService creates the slider service.
func NewSliderService(sliders repository.SliderRepository) *SliderService {
	return &SliderService{sliders: sliders}
}

// Get loads one banner.
func (s *SliderService) Get(ctx context.Context, id uint) (*models.Slider, error) {
	slider, err := s.sliders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return slider, nil
}

// ListActive returns the banners currently in their display window.
func (s *SliderService) ListActive(ctx context.Context) ([]models.Slider, error) {
	return s.sliders.List(ctx, repository.SliderListFilter{
		ActiveOnly: true,
		Limit:      constants.HomeSliderLimit,
	})
}
