package httpserver

import (
	"context"

	checkoutHTTP "ordering-kiosk/internal/checkout/delivery/http"
	checkoutUC "ordering-kiosk/internal/checkout/usecase"
	"ordering-kiosk/internal/middleware"

	"github.com/gin-gonic/gin"
)

// setupCheckoutDomain initializes the checkout domain and registers its
// routes. The form engines live on the session; the use case carries the
// entry lifecycle calls to the operator backend.
func (srv HTTPServer) setupCheckoutDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. UseCase over the operator client
	uc := checkoutUC.New(srv.operator, srv.l)

	// 2. HTTP Handler
	h := checkoutHTTP.New(srv.l, uc)

	// 3. Routes: registers /api/v1/checkout
	checkoutHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Checkout domain registered")
	return nil
}
