package http

import (
	"github.com/gin-gonic/gin"

	"ordering-kiosk/internal/catalog"
	"ordering-kiosk/pkg/log"
)

// Handler is the public interface for the catalog HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Categories(c *gin.Context)
	Detail(c *gin.Context)
	Search(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc catalog.UseCase
}

// New creates a new HTTP handler for the catalog domain.
func New(l log.Logger, uc catalog.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
