package public

import (
	"strconv"

	"github.com/vruksha/storefront/internal/provider"

	"github.com/gin-gonic/gin"
)

// Handler storefront endpoint handlers
type Handler struct {
	*provider.Container
}

// NewHandler creates the handler set.
func NewHandler(container *provider.Container) *Handler {
	return &Handler{Container: container}
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}
