package public

import (
	"github.com/vruksha/storefront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListSliders GET /api/sliders
func (h *Handler) ListSliders(c *gin.Context) {
	sliders, err := h.SliderService.ListActive(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, sliders)
}

// GetSlider GET /api/sliders/:id
func (h *Handler) GetSlider(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid slider id")
		return
	}
	slider, err := h.SliderService.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, slider)
}
