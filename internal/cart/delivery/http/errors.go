package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ordering-kiosk/internal/cart"
	"ordering-kiosk/pkg/response"
)

// mapError translates cart errors into the HTTP reply. State refusals never
// reach here; the controller swallows them as no-ops.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrUnknownItem), errors.Is(err, cart.ErrLineNotFound):
		response.NotFound(c, err)
	case errors.Is(err, cart.ErrItemUnavailable), errors.Is(err, cart.ErrInstructionsTooLong):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
