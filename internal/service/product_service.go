package service

import (
	"context"
	"errors"

	"github.com/vruksha/storefront/internal/models"
	"github.com/vruksha/storefront/internal/repository"

	"gorm.io/gorm"
)

// ProductListInput listing parameters
type ProductListInput struct {
	Keyword  string
	Page     int
	PageSize int
}

// ProductService catalog product queries
type ProductService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductService creates the product service.
func NewProductService(products repository.ProductRepository, categories repository.CategoryRepository) *ProductService {
	return &ProductService{products: products, categories: categories}
}

// List returns active products.
func (s *ProductService) List(ctx context.Context, input ProductListInput) ([]models.Product, error) {
	return s.products.List(ctx,
		repository.ProductListFilter{ActiveOnly: true, Keyword: input.Keyword},
		repository.ListOptions{Page: input.Page, PageSize: input.PageSize},
	)
}

// Featured returns the first products shown on the home page.
func (s *ProductService) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	return s.products.List(ctx,
		repository.ProductListFilter{ActiveOnly: true, Limit: limit},
		repository.ListOptions{},
	)
}

// Get loads one product with variations.
func (s *ProductService) Get(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

// ListByCategory returns active products in a category. A root category
// includes the products of its direct children, matching how the catalog
// navigation drills down.
func (s *ProductService) ListByCategory(ctx context.Context, categoryID uint) ([]models.Product, error) {
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	ids := []uint{categoryID}
	childIDs, err := s.categories.ChildIDs(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	ids = append(ids, childIDs...)

	return s.products.List(ctx,
		repository.ProductListFilter{ActiveOnly: true, CategoryIDs: ids},
		repository.ListOptions{},
	)
}
