package http

import (
	"github.com/gin-gonic/gin"

	"ordering-kiosk/internal/cart"
	"ordering-kiosk/pkg/response"
)

// respondSnapshot replies with a fresh cart snapshot. Every mutation returns
// the whole cart so the kiosk never renders a stale total.
func (h *handler) respondSnapshot(c *gin.Context, ctl cart.Controller) {
	ctx := c.Request.Context()

	snap, err := ctl.Snapshot(ctx)
	if err != nil {
		h.l.Errorf(ctx, "cart.Snapshot: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newSnapshotResp(snap))
}

// View godoc
// @Summary     View the cart
// @Description Returns the current cart with per-line state and derived totals.
// @Tags        Cart
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Success     200 {object} snapshotResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/cart [GET]
func (h *handler) View(c *gin.Context) {
	ctl, ok := h.cartController(c)
	if !ok {
		return
	}
	h.respondSnapshot(c, ctl)
}

// Add godoc
// @Summary     Add an item to the cart
// @Description Adds the item, or raises the existing line's quantity. Quantity defaults to 1 and is clamped to the 1..99 range.
// @Tags        Cart
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Param       body body addReq true "Item and quantity"
// @Success     200 {object} snapshotResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Unknown item"
// @Router      /api/v1/cart/items [POST]
func (h *handler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	ctl, ok := h.cartController(c)
	if !ok {
		return
	}

	req, err := h.processAddReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := ctl.Add(ctx, req.ItemID, req.Quantity); err != nil {
		h.l.Errorf(ctx, "cart.Add: %v", err)
		h.mapError(c, err)
		return
	}

	h.respondSnapshot(c, ctl)
}

// Increment godoc
// @Summary     Increment a line's quantity
// @Description Raises the quantity by one. At the 99 ceiling this is a silent no-op.
// @Tags        Cart
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Param       id path string true "Menu item ID"
// @Success     200 {object} snapshotResp
// @Failure     404 {object} response.Resp "Line not found"
// @Router      /api/v1/cart/items/{id}/increment [POST]
func (h *handler) Increment(c *gin.Context) {
	ctx := c.Request.Context()

	ctl, ok := h.cartController(c)
	if !ok {
		return
	}

	if err := ctl.Increment(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "cart.Increment: %v", err)
		h.mapError(c, err)
		return
	}

	h.respondSnapshot(c, ctl)
}

// Decrement godoc
// @Summary     Decrement a line's quantity
// @Description Lowers the quantity by one. At the floor of 1 this is a silent no-op; it never removes the line.
// @Tags        Cart
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Param       id path string true "Menu item ID"
// @Success     200 {object} snapshotResp
// @Failure     404 {object} response.Resp "Line not found"
// @Router      /api/v1/cart/items/{id}/decrement [POST]
func (h *handler) Decrement(c *gin.Context) {
	ctx := c.Request.Context()

	ctl, ok := h.cartController(c)
	if !ok {
		return
	}

	if err := ctl.Decrement(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "cart.Decrement: %v", err)
		h.mapError(c, err)
		return
	}

	h.respondSnapshot(c, ctl)
}

// SetQuantity godoc
// @Summary     Set a line's quantity directly
// @Description Sets the quantity, clamped to the 1..99 range before applying.
// @Tags        Cart
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Param       id   path string         true "Menu item ID"
// @Param       body body setQuantityReq true "Target quantity"
// @Success     200 {object} snapshotResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Line not found"
// @Router      /api/v1/cart/items/{id}/quantity [PUT]
func (h *handler) SetQuantity(c *gin.Context) {
	ctx := c.Request.Context()

	ctl, ok := h.cartController(c)
	if !ok {
		return
	}

	req, err := h.processSetQuantityReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := ctl.SetQuantity(ctx, c.Param("id"), req.Quantity); err != nil {
		h.l.Errorf(ctx, "cart.SetQuantity: %v", err)
		h.mapError(c, err)
		return
	}

	h.respondSnapshot(c, ctl)
}

// Remove godoc
// @Summary     Remove a line
// @Description Starts the removal flow. With confirmation on, the line enters confirming_removal and waits for confirm or cancel; otherwise it is removed at once.
// @Tags        Cart
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Param       id path string true "Menu item ID"
// @Success     200 {object} snapshotResp
// @Failure     404 {object} response.Resp "Line not found"
// @Router      /api/v1/cart/items/{id} [DELETE]
func (h *handler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	ctl, ok := h.cartController(c)
	if !ok {
		return
	}

	if err := ctl.Remove(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "cart.Remove: %v", err)
		h.mapError(c, err)
		return
	}

	h.respondSnapshot(c, ctl)
}

// ConfirmRemove godoc
// @Summary     Confirm a pending removal
// @Description Completes the removal of a line in confirming_removal. A no-op in any other state.
// @Tags        Cart
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Param       id path string true "Menu item ID"
// @Success     200 {object} snapshotResp
// @Failure     404 {object} response.Resp "Line not found"
// @Router      /api/v1/cart/items/{id}/remove/confirm [POST]
func (h *handler) ConfirmRemove(c *gin.Context) {
	ctx := c.Request.Context()

	ctl, ok := h.cartController(c)
	if !ok {
		return
	}

	if err := ctl.ConfirmRemove(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "cart.ConfirmRemove: %v", err)
		h.mapError(c, err)
		return
	}

	h.respondSnapshot(c, ctl)
}

// CancelRemove godoc
// @Summary     Cancel a pending removal
// @Description Returns a line in confirming_removal to idle with nothing changed.
// @Tags        Cart
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Param       id path string true "Menu item ID"
// @Success     200 {object} snapshotResp
// @Failure     404 {object} response.Resp "Line not found"
// @Router      /api/v1/cart/items/{id}/remove/cancel [POST]
func (h *handler) CancelRemove(c *gin.Context) {
	ctx := c.Request.Context()

	ctl, ok := h.cartController(c)
	if !ok {
		return
	}

	if err := ctl.CancelRemove(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "cart.CancelRemove: %v", err)
		h.mapError(c, err)
		return
	}

	h.respondSnapshot(c, ctl)
}

// BeginInstructions godoc
// @Summary     Open the instructions editor
// @Description Puts the line into editing_instructions with the saved text as the draft.
// @Tags        Cart
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Param       id path string true "Menu item ID"
// @Success     200 {object} snapshotResp
// @Failure     404 {object} response.Resp "Line not found"
// @Router      /api/v1/cart/items/{id}/instructions/edit [POST]
func (h *handler) BeginInstructions(c *gin.Context) {
	ctx := c.Request.Context()

	ctl, ok := h.cartController(c)
	if !ok {
		return
	}

	if err := ctl.BeginInstructions(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "cart.BeginInstructions: %v", err)
		h.mapError(c, err)
		return
	}

	h.respondSnapshot(c, ctl)
}

// InputInstructions godoc
// @Summary     Update the instructions draft
// @Description Replaces the draft text while the editor is open. Text over 200 characters is rejected.
// @Tags        Cart
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Param       id   path string          true "Menu item ID"
// @Param       body body instructionsReq true "Draft text"
// @Success     200 {object} snapshotResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Line not found"
// @Router      /api/v1/cart/items/{id}/instructions [PUT]
func (h *handler) InputInstructions(c *gin.Context) {
	ctx := c.Request.Context()

	ctl, ok := h.cartController(c)
	if !ok {
		return
	}

	req, err := h.processInstructionsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := ctl.InputInstructions(ctx, c.Param("id"), req.Text); err != nil {
		h.l.Errorf(ctx, "cart.InputInstructions: %v", err)
		h.mapError(c, err)
		return
	}

	h.respondSnapshot(c, ctl)
}

// SaveInstructions godoc
// @Summary     Save the instructions draft
// @Description Commits the draft to the line and closes the editor.
// @Tags        Cart
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Param       id path string true "Menu item ID"
// @Success     200 {object} snapshotResp
// @Failure     404 {object} response.Resp "Line not found"
// @Router      /api/v1/cart/items/{id}/instructions/save [POST]
func (h *handler) SaveInstructions(c *gin.Context) {
	ctx := c.Request.Context()

	ctl, ok := h.cartController(c)
	if !ok {
		return
	}

	if err := ctl.SaveInstructions(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "cart.SaveInstructions: %v", err)
		h.mapError(c, err)
		return
	}

	h.respondSnapshot(c, ctl)
}

// CancelInstructions godoc
// @Summary     Discard the instructions draft
// @Description Closes the editor and keeps the previously saved text.
// @Tags        Cart
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Param       id path string true "Menu item ID"
// @Success     200 {object} snapshotResp
// @Failure     404 {object} response.Resp "Line not found"
// @Router      /api/v1/cart/items/{id}/instructions/cancel [POST]
func (h *handler) CancelInstructions(c *gin.Context) {
	ctx := c.Request.Context()

	ctl, ok := h.cartController(c)
	if !ok {
		return
	}

	if err := ctl.CancelInstructions(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "cart.CancelInstructions: %v", err)
		h.mapError(c, err)
		return
	}

	h.respondSnapshot(c, ctl)
}

// Clear godoc
// @Summary     Empty the cart
// @Description Removes every line at once. No per-line confirmation applies.
// @Tags        Cart
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Success     200 {object} snapshotResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/cart [DELETE]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	ctl, ok := h.cartController(c)
	if !ok {
		return
	}

	if err := ctl.Clear(ctx); err != nil {
		h.l.Errorf(ctx, "cart.Clear: %v", err)
		h.mapError(c, err)
		return
	}

	h.respondSnapshot(c, ctl)
}
