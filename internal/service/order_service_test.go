package service

import (
	"context"
	"testing"
	"time"

	"github.com/vruksha/storefront/internal/constants"
	"github.com/vruksha/storefront/internal/models"
	"github.com/vruksha/storefront/internal/repository"

	"gorm.io/gorm"
)

func setupOrderTest(t *testing.T) (*OrderService, *CartService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	carts := repository.NewCartRepository(db)
	orders := NewOrderService(
		repository.NewOrderRepository(db),
		carts,
		repository.NewAddressRepository(db),
		nil,
	)
	cartSvc := NewCartService(carts, repository.NewProductRepository(db))
	return orders, cartSvc, db
}

func createTestAddress(t *testing.T, db *gorm.DB, userID uint) *models.Address {
	t.Helper()
	address := models.Address{
		UserID:  userID,
		Line:    "12 Farm Lane",
		City:    "Pune",
		State:   "Maharashtra",
		Pincode: "411001",
	}
	if err := db.Create(&address).Error; err != nil {
		t.Fatalf("create address failed: %v", err)
	}
	return &address
}

func TestBuildOrderDraftRequiresAddress(t *testing.T) {
	_, err := buildOrderDraft(CheckoutInput{}, time.Now())
	if err != ErrAddressRequired {
		t.Fatalf("want ErrAddressRequired, got %v", err)
	}
}

func TestBuildOrderDraftRecurringNeedsSchedule(t *testing.T) {
	_, err := buildOrderDraft(CheckoutInput{
		AddressID:   1,
		IsRecurring: true,
		StartDate:   "2026-09-01",
	}, time.Now())
	if err != ErrScheduleRequired {
		t.Fatalf("want ErrScheduleRequired, got %v", err)
	}
}

func TestBuildOrderDraftRecurringNeedsStartDate(t *testing.T) {
	_, err := buildOrderDraft(CheckoutInput{
		AddressID:   1,
		IsRecurring: true,
		Schedule:    []string{"mon", "thurs"},
	}, time.Now())
	if err != ErrStartDateRequired {
		t.Fatalf("want ErrStartDateRequired, got %v", err)
	}
}

func TestBuildOrderDraftRejectsUnknownWeekday(t *testing.T) {
	_, err := buildOrderDraft(CheckoutInput{
		AddressID:   1,
		IsRecurring: true,
		Schedule:    []string{"mon", "thursday"},
		StartDate:   "2026-09-01",
	}, time.Now())
	if err != ErrInvalidSchedule {
		t.Fatalf("want ErrInvalidSchedule, got %v", err)
	}
}

func TestBuildOrderDraftRejectsEndBeforeStart(t *testing.T) {
	_, err := buildOrderDraft(CheckoutInput{
		AddressID:   1,
		IsRecurring: true,
		Schedule:    []string{"mon"},
		StartDate:   "2026-09-10",
		EndDate:     "2026-09-01",
	}, time.Now())
	if err != ErrInvalidDateRange {
		t.Fatalf("want ErrInvalidDateRange, got %v", err)
	}
}

func TestBuildOrderDraftNonRecurringDefaultsStartToToday(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)
	draft, err := buildOrderDraft(CheckoutInput{AddressID: 1}, now)
	if err != nil {
		t.Fatalf("draft failed: %v", err)
	}
	want := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	if !draft.startDate.Equal(want) {
		t.Fatalf("start date want %v, got %v", want, draft.startDate)
	}
	if len(draft.schedule) != 0 || draft.endDate != nil {
		t.Fatalf("non-recurring draft must carry no schedule or end date: %+v", draft)
	}
}

func TestBuildOrderDraftDeduplicatesSchedule(t *testing.T) {
	draft, err := buildOrderDraft(CheckoutInput{
		AddressID:   1,
		IsRecurring: true,
		Schedule:    []string{"Mon", "mon", " tue "},
		StartDate:   "2026-09-01",
	}, time.Now())
	if err != nil {
		t.Fatalf("draft failed: %v", err)
	}
	if len(draft.schedule) != 2 || draft.schedule[0] != "mon" || draft.schedule[1] != "tue" {
		t.Fatalf("schedule want [mon tue], got %v", draft.schedule)
	}
}

func TestCheckoutWritesOrderAndClearsCart(t *testing.T) {
	orders, carts, db := setupOrderTest(t)
	ctx := context.Background()

	address := createTestAddress(t, db, 1)
	product := createTestProduct(t, db, "100.00")
	if _, err := carts.Add(ctx, 1, AddToCartInput{ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}

	order, err := orders.Checkout(ctx, 1, CheckoutInput{AddressID: address.ID})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if order.OrderNo == "" {
		t.Fatalf("order number missing")
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("status want pending, got %s", order.Status)
	}
	if order.TotalAmount.String() != "200.00" {
		t.Fatalf("total want 200.00, got %s", order.TotalAmount)
	}
	if len(order.Items) != 1 || order.Items[0].ProductName != "Spinach" {
		t.Fatalf("items wrong: %+v", order.Items)
	}
	if order.AddressLine != "12 Farm Lane" || order.AddressPincode != "411001" {
		t.Fatalf("address snapshot wrong: %+v", order)
	}

	remaining, err := carts.Items(ctx, 1)
	if err != nil {
		t.Fatalf("cart read failed: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("cart should be empty after checkout, got %d lines", len(remaining))
	}
}

func TestCheckoutValidationFailsBeforeAnyWrite(t *testing.T) {
	orders, carts, db := setupOrderTest(t)
	ctx := context.Background()

	address := createTestAddress(t, db, 1)
	product := createTestProduct(t, db, "100.00")
	if _, err := carts.Add(ctx, 1, AddToCartInput{ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}

	_, err := orders.Checkout(ctx, 1, CheckoutInput{
		AddressID:   address.ID,
		IsRecurring: true,
		StartDate:   "2026-09-01",
	})
	if err != ErrScheduleRequired {
		t.Fatalf("want ErrScheduleRequired, got %v", err)
	}

	remaining, err := carts.Items(ctx, 1)
	if err != nil {
		t.Fatalf("cart read failed: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("failed checkout must keep the cart, got %d lines", len(remaining))
	}
	var orderCount int64
	if err := db.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if orderCount != 0 {
		t.Fatalf("failed checkout must write no order, got %d", orderCount)
	}
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	orders, _, db := setupOrderTest(t)
	ctx := context.Background()
	address := createTestAddress(t, db, 1)

	_, err := orders.Checkout(ctx, 1, CheckoutInput{AddressID: address.ID})
	if err != ErrCartEmpty {
		t.Fatalf("want ErrCartEmpty, got %v", err)
	}
}

func TestCheckoutRejectsForeignAddress(t *testing.T) {
	orders, carts, db := setupOrderTest(t)
	ctx := context.Background()

	otherUsersAddress := createTestAddress(t, db, 99)
	product := createTestProduct(t, db, "50.00")
	if _, err := carts.Add(ctx, 1, AddToCartInput{ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}

	_, err := orders.Checkout(ctx, 1, CheckoutInput{AddressID: otherUsersAddress.ID})
	if err != ErrAddressRequired {
		t.Fatalf("want ErrAddressRequired, got %v", err)
	}
}

func TestRecurringCheckoutKeepsScheduleAndWindow(t *testing.T) {
	orders, carts, db := setupOrderTest(t)
	ctx := context.Background()

	address := createTestAddress(t, db, 1)
	product := createTestProduct(t, db, "60.00")
	if _, err := carts.Add(ctx, 1, AddToCartInput{ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}

	order, err := orders.Checkout(ctx, 1, CheckoutInput{
		AddressID:   address.ID,
		IsRecurring: true,
		Schedule:    []string{"mon", "thurs"},
		StartDate:   "2026-09-01",
		EndDate:     "2026-12-01",
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if !order.IsRecurring {
		t.Fatalf("order should be recurring")
	}
	if len(order.Schedule) != 2 || order.Schedule[1] != "thurs" {
		t.Fatalf("schedule wrong: %v", order.Schedule)
	}
	if order.StartDate == nil || order.StartDate.Format("2006-01-02") != "2026-09-01" {
		t.Fatalf("start date wrong: %v", order.StartDate)
	}
	if order.EndDate == nil || order.EndDate.Format("2006-01-02") != "2026-12-01" {
		t.Fatalf("end date wrong: %v", order.EndDate)
	}
}

func TestDispatchRecurringCreatesOccurrenceOnce(t *testing.T) {
	orders, carts, db := setupOrderTest(t)
	ctx := context.Background()

	address := createTestAddress(t, db, 1)
	product := createTestProduct(t, db, "60.00")
	if _, err := carts.Add(ctx, 1, AddToCartInput{ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}
	parent, err := orders.Checkout(ctx, 1, CheckoutInput{
		AddressID:   address.ID,
		IsRecurring: true,
		Schedule:    []string{"mon"},
		StartDate:   "2026-08-01",
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC) // a Monday
	if err := orders.DispatchRecurring(ctx, parent.ID, monday); err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if err := orders.DispatchRecurring(ctx, parent.ID, monday); err != nil {
		t.Fatalf("repeat dispatch failed: %v", err)
	}

	var occurrences []models.Order
	if err := db.Where("parent_id = ?", parent.ID).Find(&occurrences).Error; err != nil {
		t.Fatalf("read occurrences failed: %v", err)
	}
	if len(occurrences) != 1 {
		t.Fatalf("occurrences want 1, got %d", len(occurrences))
	}
	if occurrences[0].TotalAmount.String() != "60.00" {
		t.Fatalf("occurrence total want 60.00, got %s", occurrences[0].TotalAmount)
	}

	tuesday := monday.Add(24 * time.Hour)
	if err := orders.DispatchRecurring(ctx, parent.ID, tuesday); err != nil {
		t.Fatalf("off-schedule dispatch failed: %v", err)
	}
	var count int64
	if err := db.Model(&models.Order{}).Where("parent_id = ?", parent.ID).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("off-schedule day must not generate, got %d", count)
	}
}

func TestMyOrdersHidesOccurrences(t *testing.T) {
	orders, carts, db := setupOrderTest(t)
	ctx := context.Background()

	address := createTestAddress(t, db, 1)
	product := createTestProduct(t, db, "60.00")
	if _, err := carts.Add(ctx, 1, AddToCartInput{ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}
	parent, err := orders.Checkout(ctx, 1, CheckoutInput{
		AddressID:   address.ID,
		IsRecurring: true,
		Schedule:    []string{"mon"},
		StartDate:   "2026-08-01",
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	monday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	if err := orders.DispatchRecurring(ctx, parent.ID, monday); err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	mine, err := orders.MyOrders(ctx, 1)
	if err != nil {
		t.Fatalf("my orders failed: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("my orders want 1 root order, got %d", len(mine))
	}
	if mine[0].ID != parent.ID {
		t.Fatalf("want parent order, got %d", mine[0].ID)
	}
}
