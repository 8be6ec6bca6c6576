package legacy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/vruksha/storefront/internal/config"
	"github.com/vruksha/storefront/internal/logger"
)

const defaultTimeout = 10 * time.Second

// Client reads catalog data from the legacy backend. Every request carries
// the configured bearer token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates the legacy client.
func NewClient(cfg config.LegacyConfig) *Client {
	timeout := defaultTimeout
	if cfg.TimeoutMS > 0 {
		timeout = time.Duration(cfg.TimeoutMS) * time.Millisecond
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchProducts pulls the full product list.
func (c *Client) FetchProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.getList(ctx, "/api/products", []string{"products"}, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FetchCategories pulls the full category list.
func (c *Client) FetchCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.getList(ctx, "/api/categories", []string{"categories"}, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// FetchSliders pulls the banner list.
func (c *Client) FetchSliders(ctx context.Context) ([]Slider, error) {
	var sliders []Slider
	if err := c.getList(ctx, "/api/sliders", []string{"sliders"}, &sliders); err != nil {
		return nil, err
	}
	return sliders, nil
}

// FetchPages pulls the static pages.
func (c *Client) FetchPages(ctx context.Context) ([]Page, error) {
	var pages []Page
	if err := c.getList(ctx, "/api/pages", []string{"pages"}, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

// FetchSnapshot pulls all sections concurrently. One section failing does
// not abort the others; failures land in Snapshot.Errors.
func (c *Client) FetchSnapshot(ctx context.Context) *Snapshot {
	snapshot := &Snapshot{Errors: make(map[string]error)}

	var wg sync.WaitGroup
	var mu sync.Mutex
	record := func(section string, err error) {
		mu.Lock()
		defer mu.Unlock()
		snapshot.Errors[section] = err
		logger.Warnw("legacy_fetch_failed", "section", section, "error", err)
	}

	wg.Add(4)
	go func() {
		defer wg.Done()
		products, err := c.FetchProducts(ctx)
		if err != nil {
			record("products", err)
			return
		}
		snapshot.Products = products
	}()
	go func() {
		defer wg.Done()
		categories, err := c.FetchCategories(ctx)
		if err != nil {
			record("categories", err)
			return
		}
		snapshot.Categories = categories
	}()
	go func() {
		defer wg.Done()
		sliders, err := c.FetchSliders(ctx)
		if err != nil {
			record("sliders", err)
			return
		}
		snapshot.Sliders = sliders
	}()
	go func() {
		defer wg.Done()
		pages, err := c.FetchPages(ctx)
		if err != nil {
			record("pages", err)
			return
		}
		snapshot.Pages = pages
	}()
	wg.Wait()

	return snapshot
}

// getList fetches a path and decodes a list response. The legacy backend
// is inconsistent about envelopes: some endpoints return a bare array,
// some {"data": [...]}, some a named wrapper like {"products": [...]}.
// All three shapes are accepted.
func (c *Client) getList(ctx context.Context, path string, wrapperKeys []string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("legacy backend returned %d for %s", resp.StatusCode, path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return decodeList(body, wrapperKeys, dest)
}

func decodeList(body []byte, wrapperKeys []string, dest interface{}) error {
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "[") {
		return json.Unmarshal(body, dest)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("unexpected legacy payload: %w", err)
	}

	keys := append([]string{"data"}, wrapperKeys...)
	for _, key := range keys {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		return json.Unmarshal(raw, dest)
	}

	// Last resort: take the first array-valued field.
	for _, raw := range envelope {
		if strings.HasPrefix(strings.TrimSpace(string(raw)), "[") {
			return json.Unmarshal(raw, dest)
		}
	}
	return fmt.Errorf("no list found in legacy payload")
}
