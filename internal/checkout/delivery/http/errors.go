package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ordering-kiosk/internal/checkout"
	"ordering-kiosk/pkg/operator"
	"ordering-kiosk/pkg/response"
)

// mapError translates checkout errors into the HTTP reply. Backend errors
// below 500 carry operator detail worth relaying; anything else is hidden
// behind the generic envelope.
func (h *handler) mapError(c *gin.Context, err error) {
	var apiErr *operator.APIError

	switch {
	case errors.Is(err, checkout.ErrEntryNotFound):
		response.NotFound(c, err)
	case errors.Is(err, checkout.ErrUnknownField):
		response.Error(c, err, nil)
	case errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError:
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
