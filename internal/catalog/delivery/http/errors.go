package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ordering-kiosk/internal/catalog"
	"ordering-kiosk/pkg/response"
)

var errNegativeMaxPrice = errors.New("max_price must not be negative")

// mapError translates domain/use-case errors into the HTTP reply.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrItemNotFound):
		response.NotFound(c, err)
	default:
		response.InternalError(c, err)
	}
}
