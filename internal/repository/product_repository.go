package repository

import (
	"context"

	"github.com/vruksha/storefront/internal/models"

	"gorm.io/gorm"
)

// ProductRepository catalog persistence
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	List(ctx context.Context, filter ProductListFilter, opts ListOptions) ([]models.Product, error)
	GetVariation(ctx context.Context, productID, variationID uint) (*models.Variation, error)
	ListVariations(ctx context.Context, productID uint) ([]models.Variation, error)
}

// GormProductRepository gorm-backed implementation
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a product repository.
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Create inserts a product with its variations.
func (r *GormProductRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// GetByID loads a product with its variations and category.
func (r *GormProductRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Variations", variationOrder).
		Preload("Category").
		First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// List returns products matching the filter, variations preloaded.
func (r *GormProductRepository) List(ctx context.Context, filter ProductListFilter, opts ListOptions) ([]models.Product, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{}).
		Preload("Variations", variationOrder)
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if len(filter.CategoryIDs) > 0 {
		query = query.Where("category_id IN ?", filter.CategoryIDs)
	}
	if filter.Keyword != "" {
		query = query.Where("name LIKE ?", "%"+filter.Keyword+"%")
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	query = applyPagination(query, opts)

	var products []models.Product
	err := query.Order("sort_order ASC, id ASC").Find(&products).Error
	return products, err
}

// GetVariation loads one variation, scoped to its product.
func (r *GormProductRepository) GetVariation(ctx context.Context, productID, variationID uint) (*models.Variation, error) {
	var variation models.Variation
	err := r.db.WithContext(ctx).
		Where("id = ? AND product_id = ?", variationID, productID).
		First(&variation).Error
	if err != nil {
		return nil, err
	}
	return &variation, nil
}

// ListVariations returns a product's variations in display order. The slice
// position doubles as the index legacy clients send.
func (r *GormProductRepository) ListVariations(ctx context.Context, productID uint) ([]models.Variation, error) {
	var variations []models.Variation
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("sort_order ASC, id ASC").
		Find(&variations).Error
	return variations, err
}

func variationOrder(db *gorm.DB) *gorm.DB {
	return db.Order("variations.sort_order ASC, variations.id ASC")
}
