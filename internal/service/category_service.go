package service

import (
	"context"
	"errors"

	"github.com/vruksha/storefront/internal/models"
	"github.com/vruksha/storefront/internal/repository"

	"gorm.io/gorm"
)

// CategoryNode a category with its direct children, as rendered by the
// storefront navigation.
type CategoryNode struct {
	ID       uint           `json:"id"`
	Name     string         `json:"name"`
	Icon     string         `json:"icon,omitempty"`
	Children []CategoryNode `json:"children"`
}

// CategoryService catalog category queries
type CategoryService struct {
	categories repository.CategoryRepository
}

// NewCategoryService creates the category service.
func NewCategoryService(categories repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// List returns the flat category list.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categories.ListAll(ctx)
}

// Tree returns categories arranged as a two-level tree.
func (s *CategoryService) Tree(ctx context.Context) ([]CategoryNode, error) {
	categories, err := s.categories.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return BuildCategoryTree(categories), nil
}

// Get loads a single category.
func (s *CategoryService) Get(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return category, nil
}

// BuildCategoryTree arranges a flat category list into a two-level tree.
// Categories without a parent become roots in input order; each child is
// attached to its parent in input order. A child whose parent is absent
// from the input is dropped, and grandchildren are never nested deeper
// because the input itself only carries one level of parent links.
func BuildCategoryTree(categories []models.Category) []CategoryNode {
	roots := make([]CategoryNode, 0)
	index := make(map[uint]int, len(categories))

	for _, category := range categories {
		if category.ParentID != nil {
			continue
		}
		roots = append(roots, CategoryNode{
			ID:       category.ID,
			Name:     category.Name,
			Icon:     category.Icon,
			Children: make([]CategoryNode, 0),
		})
		index[category.ID] = len(roots) - 1
	}

	for _, category := range categories {
		if category.ParentID == nil {
			continue
		}
		pos, ok := index[*category.ParentID]
		if !ok {
			continue
		}
		roots[pos].Children = append(roots[pos].Children, CategoryNode{
			ID:       category.ID,
			Name:     category.Name,
			Icon:     category.Icon,
			Children: make([]CategoryNode, 0),
		})
	}

	return roots
}
