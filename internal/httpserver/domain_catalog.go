package httpserver

import (
	"context"

	catalogHTTP "ordering-kiosk/internal/catalog/delivery/http"
	catalogUC "ordering-kiosk/internal/catalog/usecase"

	"github.com/gin-gonic/gin"
)

// setupCatalogDomain initializes the catalog domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupCatalogDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. UseCase over the static menu repository
	uc := catalogUC.New(srv.menuRepo, srv.l)

	// 2. HTTP Handler
	h := catalogHTTP.New(srv.l, uc)

	// 3. Routes: registers /api/v1/menu
	catalogHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Catalog domain registered")
	return nil
}
