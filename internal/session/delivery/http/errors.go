package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ordering-kiosk/internal/session"
	"ordering-kiosk/pkg/response"
)

// mapError translates session errors into the HTTP reply.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		response.NotFound(c, err)
	default:
		response.InternalError(c, err)
	}
}
