package middleware

import (
	"github.com/gin-gonic/gin"

	"ordering-kiosk/internal/session"
	"ordering-kiosk/pkg/response"
)

// HeaderSessionID carries the session ID on every session-scoped request.
const HeaderSessionID = "X-Session-ID"

// sessionKey is the gin context key the resolved session is stored under.
const sessionKey = "kiosk_session"

// Session resolves the X-Session-ID header against the registry, renews the
// session's idle TTL and stores the session in the request context. Requests
// without a header are rejected before the handler runs; an unknown or
// expired ID maps to 404 so the client knows to create a fresh session.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderSessionID)
		if id == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		s, err := m.registry.Get(id)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Session unknown session %s", id)
			response.NotFound(c, session.ErrSessionNotFound)
			c.Abort()
			return
		}

		m.registry.Touch(id)
		c.Set(sessionKey, s)
		c.Next()
	}
}

// GetSession returns the session the Session middleware resolved for this
// request. Handlers behind the middleware can rely on ok being true.
func GetSession(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok
}
