package service

import (
	"context"
	"testing"

	"github.com/vruksha/storefront/internal/models"
	"github.com/vruksha/storefront/internal/repository"
)

func setupSliderTest(t *testing.T) (*SliderService, func(models.Slider) uint) {
	t.Helper()
	db := setupTestDB(t)
	create := func(slider models.Slider) uint {
		if err := db.Create(&slider).Error; err != nil {
			t.Fatalf("create slider failed: %v", err)
		}
		return slider.ID
	}
	return NewSliderService(repository.NewSliderRepository(db)), create
}

func TestGetSliderByID(t *testing.T) {
	svc, create := setupSliderTest(t)
	ctx := context.Background()

	id := create(models.Slider{Image: "/sliders/harvest.jpg", Title: "Fresh from the farm", IsActive: true})

	slider, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if slider.Title != "Fresh from the farm" {
		t.Fatalf("title wrong: %q", slider.Title)
	}
}

func TestGetSliderUnknownID(t *testing.T) {
	svc, _ := setupSliderTest(t)
	if _, err := svc.Get(context.Background(), 999); err != ErrNotFound {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
