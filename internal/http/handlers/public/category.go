package public

import (
	"github.com/vruksha/storefront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListCategories GET /api/categories
// ?tree=1 returns the two-level navigation tree instead of the flat list.
func (h *Handler) ListCategories(c *gin.Context) {
	if c.Query("tree") == "1" {
		tree, err := h.CategoryService.Tree(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		response.OK(c, tree)
		return
	}
	categories, err := h.CategoryService.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, categories)
}

// GetCategory GET /api/categories/:id
func (h *Handler) GetCategory(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid category id")
		return
	}
	category, err := h.CategoryService.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, category)
}
