package http

import (
	"github.com/gin-gonic/gin"

	"ordering-kiosk/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Every cart
// route is session-scoped.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	cart := rg.Group("/cart", mw.Session())
	{
		cart.GET("", h.View)
		cart.DELETE("", h.Clear)

		items := cart.Group("/items")
		{
			items.POST("", h.Add)
			items.POST("/:id/increment", h.Increment)
			items.POST("/:id/decrement", h.Decrement)
			items.PUT("/:id/quantity", h.SetQuantity)

			items.DELETE("/:id", h.Remove)
			items.POST("/:id/remove/confirm", h.ConfirmRemove)
			items.POST("/:id/remove/cancel", h.CancelRemove)

			items.POST("/:id/instructions/edit", h.BeginInstructions)
			items.PUT("/:id/instructions", h.InputInstructions)
			items.POST("/:id/instructions/save", h.SaveInstructions)
			items.POST("/:id/instructions/cancel", h.CancelInstructions)
		}
	}
}
