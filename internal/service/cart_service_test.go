package service

import (
	"context"
	"testing"

	"github.com/vruksha/storefront/internal/models"
	"github.com/vruksha/storefront/internal/repository"

	"gorm.io/gorm"
)

func setupCartTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewCartService(
		repository.NewCartRepository(db),
		repository.NewProductRepository(db),
	)
	return svc, db
}

func createTestProduct(t *testing.T, db *gorm.DB, base string, variations ...models.Variation) *models.Product {
	t.Helper()
	category := models.Category{Name: "Vegetables"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product := models.Product{
		CategoryID: category.ID,
		Name:       "Spinach",
		Price:      testMoney(t, base),
		IsActive:   true,
		Variations: variations,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return &product
}

func TestLineUnitPriceVariationOverridesBase(t *testing.T) {
	variationID := uint(7)
	item := models.CartItem{
		VariationID:    &variationID,
		VariationPrice: testMoney(t, "55.00"),
		Product:        &models.Product{Price: testMoney(t, "30.00")},
	}
	if got := LineUnitPrice(item); got.String() != "55.00" {
		t.Fatalf("unit price want 55.00, got %s", got)
	}
}

func TestLineUnitPriceFallsBackToBase(t *testing.T) {
	item := models.CartItem{
		Product: &models.Product{Price: testMoney(t, "30.00")},
	}
	if got := LineUnitPrice(item); got.String() != "30.00" {
		t.Fatalf("unit price want 30.00, got %s", got)
	}
}

func TestLineUnitPriceZeroWhenNothingPriced(t *testing.T) {
	if got := LineUnitPrice(models.CartItem{}); got.String() != "0.00" {
		t.Fatalf("unit price want 0.00, got %s", got)
	}
}

func TestCartSubtotal(t *testing.T) {
	items := []models.CartItem{
		{Quantity: 1, Product: &models.Product{Price: testMoney(t, "100.00")}},
		{Quantity: 2, Product: &models.Product{Price: testMoney(t, "150.00")}},
	}
	if got := CartSubtotal(items); got.String() != "400.00" {
		t.Fatalf("subtotal want 400.00, got %s", got)
	}
}

func TestCartSubtotalEmpty(t *testing.T) {
	if got := CartSubtotal(nil); got.String() != "0.00" {
		t.Fatalf("empty subtotal want 0.00, got %s", got)
	}
}

func TestAddToCartSnapshotsVariationByID(t *testing.T) {
	svc, db := setupCartTest(t)
	ctx := context.Background()
	product := createTestProduct(t, db, "30.00",
		models.Variation{Weight: "250g", Price: testMoney(t, "30.00"), Pieces: 1, SortOrder: 1},
		models.Variation{Weight: "500g", Price: testMoney(t, "55.00"), Pieces: 1, SortOrder: 2},
	)

	variationID := product.Variations[1].ID
	item, err := svc.Add(ctx, 1, AddToCartInput{
		ProductID:   product.ID,
		VariationID: &variationID,
		Quantity:    2,
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if item.VariationWeight != "500g" || item.VariationPrice.String() != "55.00" {
		t.Fatalf("snapshot wrong: %+v", item)
	}

	view, err := svc.View(ctx, 1)
	if err != nil {
		t.Fatalf("view failed: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("cart lines want 1, got %d", len(view.Items))
	}
	if view.Items[0].LineTotal.String() != "110.00" {
		t.Fatalf("line total want 110.00, got %s", view.Items[0].LineTotal)
	}
	if view.Subtotal.String() != "110.00" {
		t.Fatalf("subtotal want 110.00, got %s", view.Subtotal)
	}
}

func TestAddToCartResolvesLegacyIndex(t *testing.T) {
	svc, db := setupCartTest(t)
	ctx := context.Background()
	product := createTestProduct(t, db, "30.00",
		models.Variation{Weight: "250g", Price: testMoney(t, "30.00"), Pieces: 1, SortOrder: 1},
		models.Variation{Weight: "500g", Price: testMoney(t, "55.00"), Pieces: 1, SortOrder: 2},
	)

	index := 1
	item, err := svc.Add(ctx, 1, AddToCartInput{
		ProductID:      product.ID,
		VariationIndex: &index,
		Quantity:       1,
	})
	if err != nil {
		t.Fatalf("add by index failed: %v", err)
	}
	if item.VariationWeight != "500g" {
		t.Fatalf("index 1 should resolve to 500g, got %q", item.VariationWeight)
	}

	badIndex := 5
	_, err = svc.Add(ctx, 1, AddToCartInput{
		ProductID:      product.ID,
		VariationIndex: &badIndex,
		Quantity:       1,
	})
	if err != ErrVariationNotFound {
		t.Fatalf("out-of-range index want ErrVariationNotFound, got %v", err)
	}
}

func TestAddToCartMergesSameLine(t *testing.T) {
	svc, db := setupCartTest(t)
	ctx := context.Background()
	product := createTestProduct(t, db, "40.00")

	if _, err := svc.Add(ctx, 1, AddToCartInput{ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if _, err := svc.Add(ctx, 1, AddToCartInput{ProductID: product.ID, Quantity: 3}); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	items, err := svc.Items(ctx, 1)
	if err != nil {
		t.Fatalf("items failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("lines want 1 after merge, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Fatalf("merged quantity want 5, got %d", items[0].Quantity)
	}
}

func TestUpdateQuantityClampsToRange(t *testing.T) {
	svc, db := setupCartTest(t)
	ctx := context.Background()
	product := createTestProduct(t, db, "40.00")

	item, err := svc.Add(ctx, 1, AddToCartInput{ProductID: product.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	updated, err := svc.UpdateQuantity(ctx, 1, item.ID, 99)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Quantity != 10 {
		t.Fatalf("quantity want clamp to 10, got %d", updated.Quantity)
	}

	updated, err = svc.UpdateQuantity(ctx, 1, item.ID, 0)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Quantity != 1 {
		t.Fatalf("quantity want clamp to 1, got %d", updated.Quantity)
	}
}

func TestRemoveCartItemScopedToOwner(t *testing.T) {
	svc, db := setupCartTest(t)
	ctx := context.Background()
	product := createTestProduct(t, db, "40.00")

	item, err := svc.Add(ctx, 1, AddToCartInput{ProductID: product.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := svc.Remove(ctx, 2, item.ID); err != ErrNotFound {
		t.Fatalf("other user's delete want ErrNotFound, got %v", err)
	}
	if err := svc.Remove(ctx, 1, item.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
}
