package httpserver

import (
	"context"

	cartHTTP "ordering-kiosk/internal/cart/delivery/http"
	"ordering-kiosk/internal/middleware"

	"github.com/gin-gonic/gin"
)

// setupCartDomain registers the cart routes. Cart state lives on the
// session, so the handler only needs the logger; the Session middleware
// supplies the controller per request.
func (srv HTTPServer) setupCartDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. HTTP Handler
	h := cartHTTP.New(srv.l)

	// 2. Routes: registers /api/v1/cart
	cartHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Cart domain registered")
	return nil
}
