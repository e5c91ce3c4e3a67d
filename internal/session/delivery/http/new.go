package http

import (
	"github.com/gin-gonic/gin"

	"ordering-kiosk/internal/middleware"
	"ordering-kiosk/internal/session"
	"ordering-kiosk/pkg/log"
	"ordering-kiosk/pkg/response"
)

// Handler is the public interface for the session HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	Info(c *gin.Context)
	CloseSession(c *gin.Context)

	SearchState(c *gin.Context)
	SearchInput(c *gin.Context)
	SearchSet(c *gin.Context)
	SearchClear(c *gin.Context)
	SearchResults(c *gin.Context)
}

type handler struct {
	l        log.Logger
	registry *session.Registry
}

// New creates a new HTTP handler for the session domain.
func New(l log.Logger, registry *session.Registry) *handler {
	return &handler{
		l:        l,
		registry: registry,
	}
}

// session returns the resolved session. The Session middleware guarantees
// one on every route that needs it.
func (h *handler) session(c *gin.Context) (*session.Session, bool) {
	s, ok := middleware.GetSession(c)
	if !ok {
		h.l.Errorf(c.Request.Context(), "session delivery: no session in context")
		response.InternalError(c, session.ErrSessionNotFound)
		return nil, false
	}
	return s, true
}
