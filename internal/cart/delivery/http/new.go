package http

import (
	"github.com/gin-gonic/gin"

	"ordering-kiosk/internal/cart"
	"ordering-kiosk/internal/middleware"
	"ordering-kiosk/internal/session"
	"ordering-kiosk/pkg/log"
	"ordering-kiosk/pkg/response"
)

// Handler is the public interface for the cart HTTP delivery layer.
type Handler interface {
	View(c *gin.Context)
	Add(c *gin.Context)
	Increment(c *gin.Context)
	Decrement(c *gin.Context)
	SetQuantity(c *gin.Context)
	Remove(c *gin.Context)
	ConfirmRemove(c *gin.Context)
	CancelRemove(c *gin.Context)
	BeginInstructions(c *gin.Context)
	InputInstructions(c *gin.Context)
	SaveInstructions(c *gin.Context)
	CancelInstructions(c *gin.Context)
	Clear(c *gin.Context)
}

type handler struct {
	l log.Logger
}

// New creates a new HTTP handler for the cart domain. The cart itself is
// per-session state; handlers pull the controller off the resolved session.
func New(l log.Logger) *handler {
	return &handler{
		l: l,
	}
}

// cartController returns the session's cart controller. The Session
// middleware guarantees a session on every route in this group.
func (h *handler) cartController(c *gin.Context) (cart.Controller, bool) {
	s, ok := middleware.GetSession(c)
	if !ok {
		h.l.Errorf(c.Request.Context(), "cart delivery: no session in context")
		response.InternalError(c, session.ErrSessionNotFound)
		return nil, false
	}
	return s.Cart(), true
}
