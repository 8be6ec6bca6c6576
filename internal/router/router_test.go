package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vruksha/storefront/internal/config"
	"github.com/vruksha/storefront/internal/models"
	"github.com/vruksha/storefront/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupAPITest(t *testing.T) *gin.Engine {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	models.DB = db
	if err := models.AutoMigrate(); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.Server.Mode = gin.TestMode
	cfg.JWT = config.JWTConfig{SecretKey: "test-secret", ExpireHours: 1}
	cfg.Security.PasswordPolicy = config.PasswordPolicyConfig{MinLength: 8}

	return New(provider.NewContainer(cfg))
}

func seedAPIProduct(t *testing.T) *models.Product {
	t.Helper()
	category := models.Category{Name: "Vegetables"}
	if err := models.DB.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	price, _ := decimal.NewFromString("30.00")
	product := models.Product{
		CategoryID: category.ID,
		Name:       "Spinach",
		Price:      models.NewMoneyFromDecimal(price),
		IsActive:   true,
	}
	if err := models.DB.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return &product
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload failed: %v", err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func registerAPIUser(t *testing.T, engine *gin.Engine) string {
	t.Helper()
	resp := doJSON(t, engine, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "gardenbeds42",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("register want 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode register response failed: %v", err)
	}
	if body.Token == "" {
		t.Fatalf("register response missing token")
	}
	return body.Token
}

func TestHomeEndpointOpen(t *testing.T) {
	engine := setupAPITest(t)
	seedAPIProduct(t)

	resp := doJSON(t, engine, http.MethodGet, "/api/home", "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("home want 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var view struct {
		Sliders          []json.RawMessage `json:"sliders"`
		Categories       []json.RawMessage `json:"categories"`
		FeaturedProducts []json.RawMessage `json:"featuredProducts"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode home failed: %v", err)
	}
	if len(view.FeaturedProducts) != 1 || len(view.Categories) != 1 {
		t.Fatalf("home payload wrong: %s", resp.Body.String())
	}
	if view.Sliders == nil {
		t.Fatalf("sliders must be an empty list, not null")
	}
}

func TestSliderDetailEndpoint(t *testing.T) {
	engine := setupAPITest(t)
	slider := models.Slider{Image: "/sliders/harvest.jpg", Title: "Fresh from the farm", IsActive: true}
	if err := models.DB.Create(&slider).Error; err != nil {
		t.Fatalf("create slider failed: %v", err)
	}

	resp := doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/sliders/%d", slider.ID), "", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("slider detail want 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode slider failed: %v", err)
	}
	if body.Title != "Fresh from the farm" {
		t.Fatalf("slider title wrong: %q", body.Title)
	}

	resp = doJSON(t, engine, http.MethodGet, "/api/sliders/999", "", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("unknown slider want 404, got %d", resp.Code)
	}
}

func TestCartRequiresAuth(t *testing.T) {
	engine := setupAPITest(t)

	resp := doJSON(t, engine, http.MethodGet, "/api/cart", "", nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated cart want 401, got %d", resp.Code)
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body failed: %v", err)
	}
	if body.Message == "" {
		t.Fatalf("error body must carry a message")
	}
}

func TestCartFlowEndToEnd(t *testing.T) {
	engine := setupAPITest(t)
	product := seedAPIProduct(t)
	token := registerAPIUser(t, engine)

	resp := doJSON(t, engine, http.MethodPost, "/api/cart/add", token, gin.H{
		"productId": product.ID,
		"quantity":  2,
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("cart add want 201, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, engine, http.MethodGet, "/api/cart", token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("cart want 200, got %d", resp.Code)
	}
	var cart struct {
		Items    []json.RawMessage `json:"items"`
		Subtotal string            `json:"subtotal"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &cart); err != nil {
		t.Fatalf("decode cart failed: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("cart items want 1, got %d", len(cart.Items))
	}
	if cart.Subtotal != "60.00" {
		t.Fatalf("subtotal want 60.00, got %q", cart.Subtotal)
	}
}

func TestCheckoutRejectsMissingAddress(t *testing.T) {
	engine := setupAPITest(t)
	product := seedAPIProduct(t)
	token := registerAPIUser(t, engine)

	resp := doJSON(t, engine, http.MethodPost, "/api/cart/add", token, gin.H{
		"productId": product.ID,
		"quantity":  1,
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("cart add want 201, got %d", resp.Code)
	}

	resp = doJSON(t, engine, http.MethodPost, "/api/orders/create", token, gin.H{})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("checkout without address want 400, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "address") {
		t.Fatalf("error should mention the address: %s", resp.Body.String())
	}
}

func TestLogoutInvalidatesToken(t *testing.T) {
	engine := setupAPITest(t)
	token := registerAPIUser(t, engine)

	resp := doJSON(t, engine, http.MethodPost, "/api/auth/logout", token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("logout want 200, got %d", resp.Code)
	}

	resp = doJSON(t, engine, http.MethodGet, "/api/cart", token, nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("revoked token want 401, got %d", resp.Code)
	}
}

func TestAddressListKeepsWrapper(t *testing.T) {
	engine := setupAPITest(t)
	token := registerAPIUser(t, engine)

	resp := doJSON(t, engine, http.MethodPost, "/api/auth/address", token, gin.H{
		"address": "12 Farm Lane",
		"city":    "Pune",
		"state":   "Maharashtra",
		"pincode": "411001",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("address create want 201, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(t, engine, http.MethodGet, "/api/auth/address", token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("address list want 200, got %d", resp.Code)
	}
	var body struct {
		Addresses []json.RawMessage `json:"addresses"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode address list failed: %v", err)
	}
	if len(body.Addresses) != 1 {
		t.Fatalf("addresses want 1, got %d", len(body.Addresses))
	}
}
