package main

import (
	"context"
	"os"
	"time"

	"github.com/vruksha/storefront/internal/config"
	"github.com/vruksha/storefront/internal/legacy"
	"github.com/vruksha/storefront/internal/logger"
	"github.com/vruksha/storefront/internal/models"
)

// One-shot import of the legacy backend's catalog: categories, products,
// sliders and static pages. Sections the legacy backend fails to serve are
// skipped; everything fetched still lands.
func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())

	if cfg.Legacy.BaseURL == "" {
		logger.Errorw("import_aborted", "reason", "legacy.base_url not configured")
		os.Exit(1)
	}

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns: cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns: cfg.Database.Pool.MaxIdleConns,
	}); err != nil {
		logger.Errorw("import_db_init_failed", "error", err)
		os.Exit(1)
	}
	if err := models.AutoMigrate(); err != nil {
		logger.Errorw("import_migrate_failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client := legacy.NewClient(cfg.Legacy)
	snapshot := client.FetchSnapshot(ctx)

	categoryIDs, err := importCategories(snapshot.Categories)
	if err != nil {
		logger.Errorw("import_categories_failed", "error", err)
		os.Exit(1)
	}
	if err := importProducts(snapshot.Products, categoryIDs); err != nil {
		logger.Errorw("import_products_failed", "error", err)
		os.Exit(1)
	}
	if err := importSliders(snapshot.Sliders); err != nil {
		logger.Errorw("import_sliders_failed", "error", err)
		os.Exit(1)
	}
	if err := importPages(snapshot.Pages); err != nil {
		logger.Errorw("import_pages_failed", "error", err)
		os.Exit(1)
	}

	logger.Infow("import_done",
		"categories", len(snapshot.Categories),
		"products", len(snapshot.Products),
		"sliders", len(snapshot.Sliders),
		"pages", len(snapshot.Pages),
		"failed_sections", len(snapshot.Errors),
	)
}

// importCategories writes roots first, then children, and returns the
// legacy-ID to local-ID mapping products need.
func importCategories(categories []legacy.Category) (map[string]uint, error) {
	mapping := make(map[string]uint, len(categories))

	sortOrder := 0
	for _, record := range categories {
		if record.Parent != "" {
			continue
		}
		sortOrder++
		category := models.Category{Name: record.Name, Icon: record.Icon, SortOrder: sortOrder}
		if err := models.DB.Create(&category).Error; err != nil {
			return nil, err
		}
		mapping[record.ID] = category.ID
	}

	for _, record := range categories {
		if record.Parent == "" {
			continue
		}
		parentID, ok := mapping[record.Parent]
		if !ok {
			logger.Warnw("import_category_orphaned", "legacy_id", record.ID, "parent", record.Parent)
			continue
		}
		sortOrder++
		category := models.Category{Name: record.Name, Icon: record.Icon, ParentID: &parentID, SortOrder: sortOrder}
		if err := models.DB.Create(&category).Error; err != nil {
			return nil, err
		}
		mapping[record.ID] = category.ID
	}

	return mapping, nil
}

func importProducts(products []legacy.Product, categoryIDs map[string]uint) error {
	for i, record := range products {
		categoryID, ok := categoryIDs[record.Category]
		if !ok {
			logger.Warnw("import_product_without_category", "legacy_id", record.ID, "category", record.Category)
			continue
		}
		product := models.Product{
			CategoryID:  categoryID,
			Name:        record.Name,
			Description: record.Description,
			Price:       models.NewMoneyFromDecimal(record.Price),
			Images:      models.StringArray(record.Images),
			IsActive:    true,
			SortOrder:   i + 1,
		}
		for j, variation := range record.Variations {
			product.Variations = append(product.Variations, variation.ToModel(j+1))
		}
		if err := models.DB.Create(&product).Error; err != nil {
			return err
		}
	}
	return nil
}

func importSliders(sliders []legacy.Slider) error {
	for i, record := range sliders {
		slider := models.Slider{
			Image:         record.Image,
			Title:         record.Title,
			Subtitle:      record.Subtitle,
			ButtonText:    record.ButtonText,
			ButtonLink:    record.ButtonLink,
			ButtonVariant: record.ButtonVariant,
			IsActive:      true,
			SortOrder:     i + 1,
		}
		if err := models.DB.Create(&slider).Error; err != nil {
			return err
		}
	}
	return nil
}

func importPages(pages []legacy.Page) error {
	for i, record := range pages {
		page := models.Page{
			Slug:        record.Slug,
			Title:       record.Title,
			Body:        record.Body,
			IsPublished: true,
			SortOrder:   i + 1,
		}
		if err := models.DB.Create(&page).Error; err != nil {
			return err
		}
	}
	return nil
}
