package public

import (
	"errors"
	"net/http"

	"github.com/vruksha/storefront/internal/http/response"
	"github.com/vruksha/storefront/internal/logger"
	"github.com/vruksha/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// statusByError maps service sentinel errors onto HTTP statuses. Anything
// unmapped is a 500.
var statusByError = []struct {
	err    error
	status int
}{
	{service.ErrNotFound, http.StatusNotFound},
	{service.ErrVariationNotFound, http.StatusNotFound},
	{service.ErrEmailTaken, http.StatusConflict},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrAccountDisabled, http.StatusForbidden},
	{service.ErrWeakPassword, http.StatusBadRequest},
	{service.ErrInvalidInput, http.StatusBadRequest},
	{service.ErrCartEmpty, http.StatusBadRequest},
	{service.ErrQuantityOutOfRange, http.StatusBadRequest},
	{service.ErrAddressRequired, http.StatusBadRequest},
	{service.ErrScheduleRequired, http.StatusBadRequest},
	{service.ErrStartDateRequired, http.StatusBadRequest},
	{service.ErrInvalidSchedule, http.StatusBadRequest},
	{service.ErrInvalidDateRange, http.StatusBadRequest},
}

// fail writes the HTTP response for a service error.
func fail(c *gin.Context, err error) {
	for _, mapping := range statusByError {
		if errors.Is(err, mapping.err) {
			response.Error(c, mapping.status, mapping.err.Error())
			return
		}
	}
	logger.Errorw("request_failed",
		"path", c.FullPath(),
		"method", c.Request.Method,
		"error", err,
	)
	response.Internal(c)
}
