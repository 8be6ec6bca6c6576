package public

import (
	"github.com/vruksha/storefront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Home GET /api/home
// Aggregates sliders, the category tree and featured products in one
// payload so the landing page renders with a single request.
func (h *Handler) Home(c *gin.Context) {
	view, err := h.HomeService.View(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, view)
}
