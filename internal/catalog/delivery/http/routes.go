package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The menu is public kiosk surface; no session is required to browse it.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	menu := rg.Group("/menu")
	{
		menu.GET("", h.List)
		menu.GET("/categories", h.Categories)
		menu.GET("/items/:id", h.Detail)
		menu.GET("/search", h.Search)
	}
}
