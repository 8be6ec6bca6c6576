package service

import (
	"context"
	"errors"
	"testing"

	"github.com/vruksha/storefront/internal/cache"
	"github.com/vruksha/storefront/internal/config"
	"github.com/vruksha/storefront/internal/models"
	"github.com/vruksha/storefront/internal/repository"

	"gorm.io/gorm"
)

type failingSliderRepo struct{}

func (failingSliderRepo) Create(ctx context.Context, slider *models.Slider) error {
	return errors.New("unavailable")
}

func (failingSliderRepo) GetByID(ctx context.Context, id uint) (*models.Slider, error) {
	return nil, errors.New("unavailable")
}

func (failingSliderRepo) List(ctx context.Context, filter repository.SliderListFilter) ([]models.Slider, error) {
	return nil, errors.New("unavailable")
}

func setupHomeTest(t *testing.T, sliders repository.SliderRepository) (*HomeService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	if sliders == nil {
		sliders = repository.NewSliderRepository(db)
	}
	products := repository.NewProductRepository(db)
	categories := repository.NewCategoryRepository(db)
	svc := NewHomeService(
		NewProductService(products, categories),
		NewCategoryService(categories),
		NewSliderService(sliders),
	)
	return svc, db
}

func TestHomeViewAggregates(t *testing.T) {
	svc, db := setupHomeTest(t, nil)
	ctx := context.Background()

	createTestProduct(t, db, "30.00")
	slider := models.Slider{Image: "/sliders/harvest.jpg", IsActive: true}
	if err := db.Create(&slider).Error; err != nil {
		t.Fatalf("create slider failed: %v", err)
	}

	view, err := svc.View(ctx)
	if err != nil {
		t.Fatalf("home view failed: %v", err)
	}
	if len(view.FeaturedProducts) != 1 {
		t.Fatalf("featured products want 1, got %d", len(view.FeaturedProducts))
	}
	if len(view.Categories) != 1 {
		t.Fatalf("categories want 1, got %d", len(view.Categories))
	}
	if len(view.Sliders) != 1 {
		t.Fatalf("sliders want 1, got %d", len(view.Sliders))
	}
}

func TestHomeViewSurvivesCacheOutage(t *testing.T) {
	svc, db := setupHomeTest(t, nil)
	ctx := context.Background()

	createTestProduct(t, db, "30.00")

	// Redis is enabled but nothing listens on the port, so every cache call
	// fails immediately. The view must still be served from the database.
	if err := cache.InitRedis(&config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: 1}); err != nil {
		t.Fatalf("init redis failed: %v", err)
	}
	t.Cleanup(func() {
		if err := cache.InitRedis(&config.RedisConfig{Enabled: false}); err != nil {
			t.Fatalf("disable redis failed: %v", err)
		}
	})

	view, err := svc.View(ctx)
	if err != nil {
		t.Fatalf("home view must survive cache outage, got %v", err)
	}
	if len(view.FeaturedProducts) != 1 {
		t.Fatalf("featured products want 1, got %d", len(view.FeaturedProducts))
	}
}

func TestHomeViewToleratesSliderFailure(t *testing.T) {
	svc, db := setupHomeTest(t, failingSliderRepo{})
	ctx := context.Background()

	createTestProduct(t, db, "30.00")

	view, err := svc.View(ctx)
	if err != nil {
		t.Fatalf("home view must survive slider failure, got %v", err)
	}
	if view.Sliders == nil || len(view.Sliders) != 0 {
		t.Fatalf("sliders want empty list, got %v", view.Sliders)
	}
	if len(view.FeaturedProducts) != 1 {
		t.Fatalf("products must still load, got %d", len(view.FeaturedProducts))
	}
}
