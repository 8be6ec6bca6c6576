package legacy

import (
	"github.com/vruksha/storefront/internal/models"

	"github.com/shopspring/decimal"
)

// Record shapes of the legacy backend's JSON payloads. Field tags follow
// the legacy API, including its Mongo-style "_id" keys.

// Variation legacy pack-size record
type Variation struct {
	Weight string          `json:"weight"`
	Price  decimal.Decimal `json:"price"`
	Pieces int             `json:"pcs"`
}

// Product legacy catalog record
type Product struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Images      []string        `json:"images"`
	Variations  []Variation     `json:"variation"`
}

// Category legacy category record
type Category struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Parent string `json:"parent"`
}

// Slider legacy banner record
type Slider struct {
	ID            string `json:"_id"`
	Image         string `json:"image"`
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	ButtonText    string `json:"buttonText"`
	ButtonLink    string `json:"buttonLink"`
	ButtonVariant string `json:"buttonVariant"`
}

// Page legacy static-page record
type Page struct {
	ID    string `json:"_id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Snapshot everything the import pulls in one run. Failed sections are
// left nil and recorded in Errors, the rest still import.
type Snapshot struct {
	Products   []Product
	Categories []Category
	Sliders    []Slider
	Pages      []Page
	Errors     map[string]error
}

// ToModel converts a legacy variation.
func (v Variation) ToModel(sortOrder int) models.Variation {
	return models.Variation{
		Weight:    v.Weight,
		Price:     models.NewMoneyFromDecimal(v.Price),
		Pieces:    v.Pieces,
		SortOrder: sortOrder,
	}
}
