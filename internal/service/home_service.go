package service

import (
	"context"
	"time"

	"github.com/vruksha/storefront/internal/cache"
	"github.com/vruksha/storefront/internal/constants"
	"github.com/vruksha/storefront/internal/logger"
	"github.com/vruksha/storefront/internal/models"

	"golang.org/x/sync/errgroup"
)

// The aggregate is identical for every visitor, so it is cached whole with
// a short TTL; staleness resolves by expiry, there is no explicit
// invalidation.
const (
	homeViewCacheKey = "home:view"
	homeViewCacheTTL = time.Minute
)

// HomeView the aggregated home-page payload.
type HomeView struct {
	Sliders          []models.Slider  `json:"sliders"`
	Categories       []CategoryNode   `json:"categories"`
	FeaturedProducts []models.Product `json:"featuredProducts"`
}

// HomeService builds the home-page aggregate.
type HomeService struct {
	products   *ProductService
	categories *CategoryService
	sliders    *SliderService
}

// NewHomeService creates the home service.
func NewHomeService(products *ProductService, categories *CategoryService, sliders *SliderService) *HomeService {
	return &HomeService{products: products, categories: categories, sliders: sliders}
}

// View fetches the home-page sections concurrently. Products and categories
// are required; a slider failure only degrades the banner strip to empty,
// the rest of the page still renders. The assembled payload is cached; a
// cache failure falls through to the database.
func (s *HomeService) View(ctx context.Context) (*HomeView, error) {
	var cached HomeView
	hit, err := cache.GetJSON(ctx, homeViewCacheKey, &cached)
	if err != nil {
		logger.Warnw("home_cache_read_failed", "error", err)
	}
	if hit {
		return &cached, nil
	}

	view := &HomeView{
		Sliders:          make([]models.Slider, 0),
		Categories:       make([]CategoryNode, 0),
		FeaturedProducts: make([]models.Product, 0),
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		products, err := s.products.Featured(groupCtx, constants.HomeFeaturedProductLimit)
		if err != nil {
			return err
		}
		view.FeaturedProducts = products
		return nil
	})

	group.Go(func() error {
		tree, err := s.categories.Tree(groupCtx)
		if err != nil {
			return err
		}
		if len(tree) > constants.HomeCategoryLimit {
			tree = tree[:constants.HomeCategoryLimit]
		}
		view.Categories = tree
		return nil
	})

	group.Go(func() error {
		sliders, err := s.sliders.ListActive(groupCtx)
		if err != nil {
			logger.Warnw("home_sliders_degraded", "error", err)
			return nil
		}
		view.Sliders = sliders
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	if err := cache.SetJSON(ctx, homeViewCacheKey, view, homeViewCacheTTL); err != nil {
		logger.Warnw("home_cache_write_failed", "error", err)
	}
	return view, nil
}
