package public

import (
	"strconv"

	"github.com/vruksha/storefront/internal/http/response"
	"github.com/vruksha/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// ListProducts GET /api/products
func (h *Handler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize"))
	products, err := h.ProductService.List(c.Request.Context(), service.ProductListInput{
		Keyword:  c.Query("q"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, products)
}

// GetProduct GET /api/products/:id
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid product id")
		return
	}
	product, err := h.ProductService.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, product)
}

// ListProductsByCategory GET /api/products/category/:id
func (h *Handler) ListProductsByCategory(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid category id")
		return
	}
	products, err := h.ProductService.ListByCategory(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, products)
}
