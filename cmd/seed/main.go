package main

import (
	"os"

	"github.com/vruksha/storefront/internal/config"
	"github.com/vruksha/storefront/internal/constants"
	"github.com/vruksha/storefront/internal/logger"
	"github.com/vruksha/storefront/internal/models"

	"github.com/shopspring/decimal"
)

// Seeds a demo agricultural catalog: categories, products with pack-size
// variations, home sliders and the static pages. Safe to re-run, it skips
// anything already present.
func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns: cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns: cfg.Database.Pool.MaxIdleConns,
	}); err != nil {
		logger.Errorw("seed_db_init_failed", "error", err)
		os.Exit(1)
	}
	if err := models.AutoMigrate(); err != nil {
		logger.Errorw("seed_migrate_failed", "error", err)
		os.Exit(1)
	}

	if err := seedCatalog(); err != nil {
		logger.Errorw("seed_catalog_failed", "error", err)
		os.Exit(1)
	}
	if err := seedSliders(); err != nil {
		logger.Errorw("seed_sliders_failed", "error", err)
		os.Exit(1)
	}
	if err := seedPages(); err != nil {
		logger.Errorw("seed_pages_failed", "error", err)
		os.Exit(1)
	}

	logger.Infow("seed_done")
}

func money(amount string) models.Money {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		panic(err)
	}
	return models.NewMoneyFromDecimal(d)
}

func seedCatalog() error {
	var count int64
	if err := models.DB.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Infow("seed_catalog_skipped", "products", count)
		return nil
	}

	vegetables := models.Category{Name: "Vegetables", Icon: "/icons/vegetables.png", SortOrder: 1}
	fruits := models.Category{Name: "Fruits", Icon: "/icons/fruits.png", SortOrder: 2}
	dairy := models.Category{Name: "Dairy", Icon: "/icons/dairy.png", SortOrder: 3}
	grains := models.Category{Name: "Grains & Pulses", Icon: "/icons/grains.png", SortOrder: 4}
	for _, category := range []*models.Category{&vegetables, &fruits, &dairy, &grains} {
		if err := models.DB.Create(category).Error; err != nil {
			return err
		}
	}

	leafy := models.Category{Name: "Leafy Greens", ParentID: &vegetables.ID, SortOrder: 1}
	roots := models.Category{Name: "Root Vegetables", ParentID: &vegetables.ID, SortOrder: 2}
	seasonal := models.Category{Name: "Seasonal Fruits", ParentID: &fruits.ID, SortOrder: 1}
	for _, category := range []*models.Category{&leafy, &roots, &seasonal} {
		if err := models.DB.Create(category).Error; err != nil {
			return err
		}
	}

	products := []models.Product{
		{
			CategoryID: leafy.ID, Name: "Spinach", SortOrder: 1,
			Description: "Farm-fresh spinach, harvested the same morning.",
			Price:       money("30.00"), Stock: 120,
			Images: models.StringArray{"/images/spinach.jpg"},
			Variations: []models.Variation{
				{Weight: "250g", Price: money("30.00"), Pieces: 1, SortOrder: 1},
				{Weight: "500g", Price: money("55.00"), Pieces: 1, SortOrder: 2},
			},
		},
		{
			CategoryID: roots.ID, Name: "Carrots", SortOrder: 2,
			Description: "Crunchy red carrots grown without chemical pesticides.",
			Price:       money("40.00"), Stock: 200,
			Images: models.StringArray{"/images/carrots.jpg"},
			Variations: []models.Variation{
				{Weight: "500g", Price: money("40.00"), Pieces: 1, SortOrder: 1},
				{Weight: "1kg", Price: money("75.00"), Pieces: 1, SortOrder: 2},
			},
		},
		{
			CategoryID: seasonal.ID, Name: "Alphonso Mangoes", SortOrder: 3,
			Description: "Ratnagiri Alphonso mangoes, naturally ripened.",
			Price:       money("450.00"), Stock: 60,
			Images: models.StringArray{"/images/mangoes.jpg"},
			Variations: []models.Variation{
				{Weight: "1 dozen", Price: money("450.00"), Pieces: 12, SortOrder: 1},
				{Weight: "half dozen", Price: money("240.00"), Pieces: 6, SortOrder: 2},
			},
		},
		{
			CategoryID: dairy.ID, Name: "A2 Cow Milk", SortOrder: 4,
			Description: "Fresh A2 milk from grass-fed desi cows, delivered daily.",
			Price:       money("60.00"), Stock: 500,
			Images: models.StringArray{"/images/milk.jpg"},
			Variations: []models.Variation{
				{Weight: "500ml", Price: money("35.00"), Pieces: 1, SortOrder: 1},
				{Weight: "1L", Price: money("60.00"), Pieces: 1, SortOrder: 2},
			},
		},
		{
			CategoryID: grains.ID, Name: "Organic Toor Dal", SortOrder: 5,
			Description: "Unpolished toor dal from smallholder farms.",
			Price:       money("140.00"), Stock: 80,
			Images: models.StringArray{"/images/toor-dal.jpg"},
			Variations: []models.Variation{
				{Weight: "1kg", Price: money("140.00"), Pieces: 1, SortOrder: 1},
			},
		},
		{
			CategoryID: grains.ID, Name: "Brown Rice", SortOrder: 6,
			Description: "Stone-milled brown rice, rich in fibre.",
			Price:       money("95.00"), Stock: 90,
			Images: models.StringArray{"/images/brown-rice.jpg"},
		},
	}
	for i := range products {
		if err := models.DB.Create(&products[i]).Error; err != nil {
			return err
		}
	}
	logger.Infow("seed_catalog_created", "products", len(products))
	return nil
}

func seedSliders() error {
	var count int64
	if err := models.DB.Model(&models.Slider{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	sliders := []models.Slider{
		{
			Image: "/sliders/harvest.jpg", SortOrder: 1,
			Title:      "Fresh from the farm",
			Subtitle:   "Vegetables and fruits delivered within hours of harvest",
			ButtonText: "Shop now", ButtonLink: "/products", ButtonVariant: "primary",
		},
		{
			Image: "/sliders/milk.jpg", SortOrder: 2,
			Title:      "Daily milk subscription",
			Subtitle:   "Set your delivery days once, we handle the rest",
			ButtonText: "Subscribe", ButtonLink: "/products/category/3", ButtonVariant: "outline",
		},
	}
	for i := range sliders {
		if err := models.DB.Create(&sliders[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedPages() error {
	pages := []models.Page{
		{Slug: constants.PageSlugAbout, Title: "About Us", SortOrder: 1,
			Body: "We connect smallholder farmers directly with your kitchen."},
		{Slug: constants.PageSlugTerms, Title: "Terms & Conditions", SortOrder: 2,
			Body: "Terms governing the use of this storefront."},
		{Slug: constants.PageSlugPrivacy, Title: "Privacy Policy", SortOrder: 3,
			Body: "How we collect, use and protect your data."},
		{Slug: constants.PageSlugCancellation, Title: "Cancellation Policy", SortOrder: 4,
			Body: "Orders can be cancelled before they are confirmed for delivery."},
		{Slug: constants.PageSlugUserDeletion, Title: "Account Deletion", SortOrder: 5,
			Body: "How to request deletion of your account and data."},
	}
	for i := range pages {
		var count int64
		if err := models.DB.Model(&models.Page{}).
			Where("slug = ?", pages[i].Slug).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := models.DB.Create(&pages[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
