package httpserver

import (
	"context"

	"ordering-kiosk/internal/middleware"
	sessionHTTP "ordering-kiosk/internal/session/delivery/http"

	"github.com/gin-gonic/gin"
)

// setupSessionDomain registers the session and search routes over the
// shared registry.
func (srv HTTPServer) setupSessionDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. HTTP Handler
	h := sessionHTTP.New(srv.l, srv.registry)

	// 2. Routes: registers /api/v1/sessions and /api/v1/search
	sessionHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Session domain registered")
	return nil
}
