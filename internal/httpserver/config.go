package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"

	"ordering-kiosk/internal/cart"
	"ordering-kiosk/internal/checkout"
	"ordering-kiosk/pkg/response"
)

// kioskConfig handles kiosk configuration requests. The UI reads this once
// at boot to mirror the server's timing and presentation toggles.
// @Summary     Kiosk configuration
// @Description Returns the presentation toggles and timing windows the kiosk UI renders with.
// @Tags        Kiosk
// @Produce     json
// @Success     200 {object} map[string]interface{} "Kiosk configuration"
// @Router      /api/v1/kiosk/config [get]
func (srv HTTPServer) kioskConfig(c *gin.Context) {
	sessOpts := srv.registry.Config()

	response.OK(c, gin.H{
		"search": gin.H{
			"debounce_delay_ms": int(srv.searchOpts.Delay / time.Millisecond),
			"placeholder":       srv.searchOpts.Placeholder,
			"show_clear":        srv.searchOpts.ShowClear,
		},
		"cart": gin.H{
			"settle_delay_ms":              int(srv.cartOpts.SettleDelay / time.Millisecond),
			"require_removal_confirmation": srv.cartOpts.RequireRemovalConfirmation,
			"min_quantity":                 cart.MinQuantity,
			"max_quantity":                 cart.MaxQuantity,
			"max_instructions_len":         cart.MaxInstructionsLen,
		},
		"checkout": gin.H{
			"success_display_delay_ms": int(srv.checkoutOpts.SuccessDisplayDelay / time.Millisecond),
			"min_entry_quantity":       checkout.MinEntryQuantity,
			"max_entry_quantity":       checkout.MaxEntryQuantity,
		},
		"session": gin.H{
			"ttl_seconds":  int(sessOpts.TTL / time.Second),
			"max_sessions": sessOpts.MaxSessions,
		},
	})
}
