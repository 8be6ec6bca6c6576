package service

import (
	"context"
	"errors"

	"github.com/vruksha/storefront/internal/models"
	"github.com/vruksha/storefront/internal/repository"

	"gorm.io/gorm"
)

// PageService static-page queries
type PageService struct {
	pages repository.PageRepository
}

// NewPageService creates the page service.
func NewPageService(pages repository.PageRepository) *PageService {
	return &PageService{pages: pages}
}

// List returns all published pages.
func (s *PageService) List(ctx context.Context) ([]models.Page, error) {
	return s.pages.ListPublished(ctx)
}

// GetBySlug loads one published page.
func (s *PageService) GetBySlug(ctx context.Context, slug string) (*models.Page, error) {
	page, err := s.pages.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return page, nil
}
