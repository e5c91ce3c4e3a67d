package http

import (
	"github.com/gin-gonic/gin"

	"ordering-kiosk/internal/checkout"
	"ordering-kiosk/internal/middleware"
	"ordering-kiosk/internal/session"
	"ordering-kiosk/pkg/log"
	"ordering-kiosk/pkg/response"
)

// Handler is the public interface for the checkout HTTP delivery layer.
type Handler interface {
	// Data-entry form
	DataEntryState(c *gin.Context)
	DataEntrySetFields(c *gin.Context)
	DataEntrySubmit(c *gin.Context)
	DataEntryReset(c *gin.Context)

	// Payment form
	PaymentState(c *gin.Context)
	PaymentSetField(c *gin.Context)
	PaymentTouch(c *gin.Context)
	PaymentSetSaveCard(c *gin.Context)
	PaymentSubmit(c *gin.Context)
	PaymentReset(c *gin.Context)

	// Entry lifecycle
	ListEntries(c *gin.Context)
	GetEntry(c *gin.Context)
	SubmitEntry(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc checkout.UseCase
}

// New creates a new HTTP handler for the checkout domain. The form engines
// are per-session state; entry listing goes through the shared use case.
func New(l log.Logger, uc checkout.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

// session returns the resolved session. The Session middleware guarantees
// one on every route in this group.
func (h *handler) session(c *gin.Context) (*session.Session, bool) {
	s, ok := middleware.GetSession(c)
	if !ok {
		h.l.Errorf(c.Request.Context(), "checkout delivery: no session in context")
		response.InternalError(c, session.ErrSessionNotFound)
		return nil, false
	}
	return s, true
}
