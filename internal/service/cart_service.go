package service

import (
	"context"
	"errors"

	"github.com/vruksha/storefront/internal/constants"
	"github.com/vruksha/storefront/internal/models"
	"github.com/vruksha/storefront/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartLineView one cart line as rendered by the storefront.
type CartLineView struct {
	ID        uint                     `json:"_id"`
	Product   *models.Product          `json:"product"`
	Variation models.VariationSnapshot `json:"variation"`
	Quantity  int                      `json:"quantity"`
	LineTotal models.Money             `json:"lineTotal"`
}

// CartView the whole cart with its computed subtotal.
type CartView struct {
	Items    []CartLineView `json:"items"`
	Subtotal models.Money   `json:"subtotal"`
}

// AddToCartInput add payload. VariationID takes precedence; VariationIndex
// is the positional form legacy clients send, resolved against the
// product's ordered variation list.
type AddToCartInput struct {
	ProductID      uint
	VariationID    *uint
	VariationIndex *int
	Quantity       int
}

// CartService cart management and pricing
type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

// NewCartService creates the cart service.
func NewCartService(carts repository.CartRepository, products repository.ProductRepository) *CartService {
	return &CartService{carts: carts, products: products}
}

// LineUnitPrice resolves the price one unit of a cart line sells at: the
// selected variation's price when one was chosen, otherwise the product's
// base price, otherwise zero.
func LineUnitPrice(item models.CartItem) models.Money {
	if item.VariationID != nil {
		return item.VariationPrice
	}
	if item.Product != nil {
		return item.Product.Price
	}
	return models.Money{}
}

// LineTotal multiplies the unit price by the quantity.
func LineTotal(item models.CartItem) models.Money {
	unit := LineUnitPrice(item)
	return models.NewMoneyFromDecimal(unit.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
}

// CartSubtotal sums line totals across the cart.
func CartSubtotal(items []models.CartItem) models.Money {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(LineTotal(item).Decimal)
	}
	return models.NewMoneyFromDecimal(total)
}

// View returns the user's cart with computed line totals and subtotal.
func (s *CartService) View(ctx context.Context, userID uint) (*CartView, error) {
	items, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	view := &CartView{
		Items:    make([]CartLineView, 0, len(items)),
		Subtotal: CartSubtotal(items),
	}
	for _, item := range items {
		view.Items = append(view.Items, CartLineView{
			ID:        item.ID,
			Product:   item.Product,
			Variation: item.Snapshot(),
			Quantity:  item.Quantity,
			LineTotal: LineTotal(item),
		})
	}
	return view, nil
}

// Add puts a product in the cart, snapshotting the chosen variation.
// Adding the same product+variation again merges into the existing line.
func (s *CartService) Add(ctx context.Context, userID uint, input AddToCartInput) (*models.CartItem, error) {
	quantity := clampQuantity(input.Quantity)

	product, err := s.products.GetByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	variation, err := s.resolveVariation(ctx, product, input)
	if err != nil {
		return nil, err
	}

	item := &models.CartItem{
		UserID:    userID,
		ProductID: product.ID,
		Quantity:  quantity,
	}
	if variation != nil {
		variationID := variation.ID
		item.VariationID = &variationID
		item.VariationWeight = variation.Weight
		item.VariationPrice = variation.Price
		item.VariationPieces = variation.Pieces
	}

	existing, err := s.carts.FindLine(ctx, userID, product.ID, item.VariationID)
	if err == nil {
		merged := clampQuantity(existing.Quantity + quantity)
		if err := s.carts.UpdateQuantity(ctx, existing.ID, merged); err != nil {
			return nil, err
		}
		existing.Quantity = merged
		existing.Product = product
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.carts.Create(ctx, item); err != nil {
		return nil, err
	}
	item.Product = product
	return item, nil
}

// UpdateQuantity sets a line's quantity, clamped to the allowed range.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, itemID uint, quantity int) (*models.CartItem, error) {
	item, err := s.carts.GetForUser(ctx, itemID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	clamped := clampQuantity(quantity)
	if err := s.carts.UpdateQuantity(ctx, item.ID, clamped); err != nil {
		return nil, err
	}
	item.Quantity = clamped
	return item, nil
}

// Remove deletes a line from the user's cart.
func (s *CartService) Remove(ctx context.Context, userID, itemID uint) error {
	if err := s.carts.Delete(ctx, itemID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Items returns the raw cart lines, products preloaded.
func (s *CartService) Items(ctx context.Context, userID uint) ([]models.CartItem, error) {
	return s.carts.ListByUser(ctx, userID)
}

func (s *CartService) resolveVariation(ctx context.Context, product *models.Product, input AddToCartInput) (*models.Variation, error) {
	if input.VariationID != nil {
		variation, err := s.products.GetVariation(ctx, product.ID, *input.VariationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrVariationNotFound
			}
			return nil, err
		}
		return variation, nil
	}
	if input.VariationIndex != nil {
		variations, err := s.products.ListVariations(ctx, product.ID)
		if err != nil {
			return nil, err
		}
		idx := *input.VariationIndex
		if idx < 0 || idx >= len(variations) {
			return nil, ErrVariationNotFound
		}
		return &variations[idx], nil
	}
	return nil, nil
}

func clampQuantity(quantity int) int {
	if quantity < constants.CartQuantityMin {
		return constants.CartQuantityMin
	}
	if quantity > constants.CartQuantityMax {
		return constants.CartQuantityMax
	}
	return quantity
}
