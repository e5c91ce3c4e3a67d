package http

import (
	"github.com/gin-gonic/gin"

	"ordering-kiosk/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Creating a
// session is the one unauthenticated call; everything else resolves the
// X-Session-ID header first.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sessions := rg.Group("/sessions")
	{
		sessions.POST("", h.Create)
		sessions.GET("/current", mw.Session(), h.Info)
		sessions.DELETE("/current", mw.Session(), h.CloseSession)
	}

	search := rg.Group("/search", mw.Session())
	{
		search.GET("", h.SearchState)
		search.POST("/input", h.SearchInput)
		search.PUT("", h.SearchSet)
		search.POST("/clear", h.SearchClear)
		search.GET("/results", h.SearchResults)
	}
}
