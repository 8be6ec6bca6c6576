package service

import (
	"context"
	"testing"

	"github.com/vruksha/storefront/internal/repository"
)

func setupAddressTest(t *testing.T) *AddressService {
	t.Helper()
	db := setupTestDB(t)
	return NewAddressService(repository.NewAddressRepository(db))
}

func TestCreateAddressDefaultFlagMovesDefault(t *testing.T) {
	svc := setupAddressTest(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, 1, AddressInput{
		Line: "12 Farm Lane", City: "Pune", State: "Maharashtra", Pincode: "411001",
		IsDefault: true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := svc.Create(ctx, 1, AddressInput{
		Line: "4 Orchard Road", City: "Pune", State: "Maharashtra", Pincode: "411002",
		IsDefault: true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	addresses, err := svc.List(ctx, 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(addresses) != 2 {
		t.Fatalf("addresses want 2, got %d", len(addresses))
	}
	// Default first in list order.
	if addresses[0].ID != second.ID || !addresses[0].IsDefault {
		t.Fatalf("new default should lead the list: %+v", addresses)
	}
	for _, address := range addresses {
		if address.ID == first.ID && address.IsDefault {
			t.Fatalf("old default should be cleared")
		}
	}
}

func TestAddressValidationRejectsBlankFields(t *testing.T) {
	svc := setupAddressTest(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, AddressInput{Line: "12 Farm Lane", City: "Pune"})
	if err != ErrInvalidInput {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestAddressOwnershipEnforced(t *testing.T) {
	svc := setupAddressTest(t)
	ctx := context.Background()

	address, err := svc.Create(ctx, 1, AddressInput{
		Line: "12 Farm Lane", City: "Pune", State: "Maharashtra", Pincode: "411001",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.Update(ctx, 2, address.ID, AddressInput{
		Line: "Hacked", City: "X", State: "Y", Pincode: "0",
	}); err != ErrNotFound {
		t.Fatalf("foreign update want ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, 2, address.ID); err != ErrNotFound {
		t.Fatalf("foreign delete want ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, 1, address.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
}
