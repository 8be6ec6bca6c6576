package service

import (
	"context"
	"errors"
	"strings"

	"github.com/vruksha/storefront/internal/models"
	"github.com/vruksha/storefront/internal/repository"

	"gorm.io/gorm"
)

// AddressInput create/update payload
type AddressInput struct {
	Line      string
	City      string
	State     string
	Pincode   string
	Country   string
	IsDefault bool
}

// AddressService delivery-address management
type AddressService struct {
	addresses repository.AddressRepository
}

// NewAddressService creates the address service.
func NewAddressService(addresses repository.AddressRepository) *AddressService {
	return &AddressService{addresses: addresses}
}

// List returns the user's addresses.
func (s *AddressService) List(ctx context.Context, userID uint) ([]models.Address, error) {
	return s.addresses.ListByUser(ctx, userID)
}

// Create adds an address. Marking it default clears the previous default.
func (s *AddressService) Create(ctx context.Context, userID uint, input AddressInput) (*models.Address, error) {
	if err := validateAddressInput(input); err != nil {
		return nil, err
	}
	if input.IsDefault {
		if err := s.addresses.ClearDefault(ctx, userID); err != nil {
			return nil, err
		}
	}
	address := &models.Address{
		UserID:    userID,
		Line:      strings.TrimSpace(input.Line),
		City:      strings.TrimSpace(input.City),
		State:     strings.TrimSpace(input.State),
		Pincode:   strings.TrimSpace(input.Pincode),
		Country:   strings.TrimSpace(input.Country),
		IsDefault: input.IsDefault,
	}
	if err := s.addresses.Create(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

// Update edits a user-owned address.
func (s *AddressService) Update(ctx context.Context, userID, id uint, input AddressInput) (*models.Address, error) {
	if err := validateAddressInput(input); err != nil {
		return nil, err
	}
	address, err := s.addresses.GetForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if input.IsDefault && !address.IsDefault {
		if err := s.addresses.ClearDefault(ctx, userID); err != nil {
			return nil, err
		}
	}
	address.Line = strings.TrimSpace(input.Line)
	address.City = strings.TrimSpace(input.City)
	address.State = strings.TrimSpace(input.State)
	address.Pincode = strings.TrimSpace(input.Pincode)
	address.Country = strings.TrimSpace(input.Country)
	address.IsDefault = input.IsDefault
	if err := s.addresses.Update(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

// Delete removes a user-owned address.
func (s *AddressService) Delete(ctx context.Context, userID, id uint) error {
	if err := s.addresses.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// GetForUser loads one user-owned address.
func (s *AddressService) GetForUser(ctx context.Context, userID, id uint) (*models.Address, error) {
	address, err := s.addresses.GetForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return address, nil
}

func validateAddressInput(input AddressInput) error {
	if strings.TrimSpace(input.Line) == "" ||
		strings.TrimSpace(input.City) == "" ||
		strings.TrimSpace(input.State) == "" ||
		strings.TrimSpace(input.Pincode) == "" {
		return ErrInvalidInput
	}
	return nil
}
