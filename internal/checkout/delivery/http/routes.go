package http

import (
	"github.com/gin-gonic/gin"

	"ordering-kiosk/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Every
// checkout route is session-scoped; the form engines live on the session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	checkout := rg.Group("/checkout", mw.Session())
	{
		dataEntry := checkout.Group("/data-entry")
		{
			dataEntry.GET("", h.DataEntryState)
			dataEntry.PUT("/fields", h.DataEntrySetFields)
			dataEntry.POST("/submit", h.DataEntrySubmit)
			dataEntry.POST("/reset", h.DataEntryReset)
		}

		payment := checkout.Group("/payment")
		{
			payment.GET("", h.PaymentState)
			payment.PUT("/fields", h.PaymentSetField)
			payment.POST("/fields/:field/touch", h.PaymentTouch)
			payment.PUT("/save-card", h.PaymentSetSaveCard)
			payment.POST("/submit", h.PaymentSubmit)
			payment.POST("/reset", h.PaymentReset)
		}

		entries := checkout.Group("/entries")
		{
			entries.GET("", h.ListEntries)
			entries.GET("/:id", h.GetEntry)
			entries.POST("/:id/submit", h.SubmitEntry)
		}
	}
}
