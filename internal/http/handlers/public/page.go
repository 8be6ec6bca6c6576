package public

import (
	"github.com/vruksha/storefront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListPages GET /api/pages
func (h *Handler) ListPages(c *gin.Context) {
	pages, err := h.PageService.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, pages)
}

// GetPage GET /api/pages/:slug
func (h *Handler) GetPage(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		response.BadRequest(c, "invalid page slug")
		return
	}
	page, err := h.PageService.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, page)
}
