package http

import (
	"github.com/gin-gonic/gin"

	"ordering-kiosk/pkg/response"
)

// DataEntryState godoc
// @Summary     Get the data-entry form state
// @Description Returns the draft, phase and any form error as the UI renders them.
// @Tags        Checkout
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Success     200 {object} dataEntryStateResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/checkout/data-entry [GET]
func (h *handler) DataEntryState(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	st := s.DataEntry().State(c.Request.Context())
	response.OK(c, newDataEntryStateResp(st))
}

// DataEntrySetFields godoc
// @Summary     Update data-entry form fields
// @Description Partial update; only fields present in the body change. While a submission is in flight or the success indicator is up, changes are silently ignored.
// @Tags        Checkout
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Param       body body dataEntryFieldsReq true "Fields to change"
// @Success     200 {object} dataEntryStateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/checkout/data-entry/fields [PUT]
func (h *handler) DataEntrySetFields(c *gin.Context) {
	ctx := c.Request.Context()

	s, ok := h.session(c)
	if !ok {
		return
	}

	req, err := h.processDataEntryFieldsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	eng := s.DataEntry()
	st := eng.State(ctx)

	if req.EntryType != nil {
		st, _ = eng.SetEntryType(ctx, *req.EntryType)
	}
	if req.Title != nil {
		st, _ = eng.SetTitle(ctx, *req.Title)
	}
	if req.Description != nil {
		st, _ = eng.SetDescription(ctx, *req.Description)
	}
	if req.Quantity != nil {
		st, _ = eng.SetQuantity(ctx, *req.Quantity)
	}
	if req.Priority != nil {
		st, _ = eng.SetPriority(ctx, *req.Priority)
	}
	if req.Notes != nil {
		st, _ = eng.SetNotes(ctx, *req.Notes)
	}

	response.OK(c, newDataEntryStateResp(st))
}

// DataEntrySubmit godoc
// @Summary     Submit the data-entry form
// @Description Validates the draft and sends it to the operator backend. Validation and remote failures surface in form_error with the draft kept intact.
// @Tags        Checkout
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Success     200 {object} dataEntryStateResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/checkout/data-entry/submit [POST]
func (h *handler) DataEntrySubmit(c *gin.Context) {
	ctx := c.Request.Context()

	s, ok := h.session(c)
	if !ok {
		return
	}

	st, err := s.DataEntry().Submit(ctx)
	if err != nil {
		h.l.Errorf(ctx, "checkout.DataEntrySubmit: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newDataEntryStateResp(st))
}

// DataEntryReset godoc
// @Summary     Reset the data-entry form
// @Description Returns the draft to its defaults. Ignored while submitting or while the success indicator is displayed.
// @Tags        Checkout
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Success     200 {object} dataEntryStateResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/checkout/data-entry/reset [POST]
func (h *handler) DataEntryReset(c *gin.Context) {
	ctx := c.Request.Context()

	s, ok := h.session(c)
	if !ok {
		return
	}

	st, err := s.DataEntry().Reset(ctx)
	if err != nil {
		h.l.Errorf(ctx, "checkout.DataEntryReset: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newDataEntryStateResp(st))
}

// PaymentState godoc
// @Summary     Get the payment form state
// @Description Returns every field with its touched flag and error, plus the derived card type and submit gate.
// @Tags        Checkout
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Success     200 {object} paymentStateResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/checkout/payment [GET]
func (h *handler) PaymentState(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	st := s.Payment().State(c.Request.Context())
	response.OK(c, newPaymentStateResp(st))
}

// PaymentSetField godoc
// @Summary     Set a payment form field
// @Description Updates one field. The card number is stripped to digits, capped at 16 and reformatted; touched fields re-validate on every change.
// @Tags        Checkout
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Param       body body paymentFieldReq true "Field name and value"
// @Success     200 {object} paymentStateResp
// @Failure     400 {object} response.Resp "Unknown field"
// @Router      /api/v1/checkout/payment/fields [PUT]
func (h *handler) PaymentSetField(c *gin.Context) {
	ctx := c.Request.Context()

	s, ok := h.session(c)
	if !ok {
		return
	}

	req, err := h.processPaymentFieldReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	st, err := s.Payment().SetField(ctx, req.Field, req.Value)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, newPaymentStateResp(st))
}

// PaymentTouch godoc
// @Summary     Mark a payment field as touched
// @Description The blur event: validates the field now and keeps validating it on later changes.
// @Tags        Checkout
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Param       field path string true "Field name"
// @Success     200 {object} paymentStateResp
// @Failure     400 {object} response.Resp "Unknown field"
// @Router      /api/v1/checkout/payment/fields/{field}/touch [POST]
func (h *handler) PaymentTouch(c *gin.Context) {
	ctx := c.Request.Context()

	s, ok := h.session(c)
	if !ok {
		return
	}

	st, err := s.Payment().Touch(ctx, c.Param("field"))
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, newPaymentStateResp(st))
}

// PaymentSetSaveCard godoc
// @Summary     Toggle save-card
// @Description Sets the save-card checkbox. Advisory; no validation runs on it.
// @Tags        Checkout
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Param       body body saveCardReq true "Save-card flag"
// @Success     200 {object} paymentStateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/checkout/payment/save-card [PUT]
func (h *handler) PaymentSetSaveCard(c *gin.Context) {
	ctx := c.Request.Context()

	s, ok := h.session(c)
	if !ok {
		return
	}

	req, err := h.processSaveCardReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	st, err := s.Payment().SetSaveCard(ctx, req.Save)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, newPaymentStateResp(st))
}

// PaymentSubmit godoc
// @Summary     Submit the payment form
// @Description Marks every field touched and validates all of them; only a fully valid form reaches the operator backend. On success the order consumes the cart and card details are scrubbed.
// @Tags        Checkout
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Success     200 {object} paymentStateResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/checkout/payment/submit [POST]
func (h *handler) PaymentSubmit(c *gin.Context) {
	ctx := c.Request.Context()

	s, ok := h.session(c)
	if !ok {
		return
	}

	st, err := s.Payment().Submit(ctx)
	if err != nil {
		h.l.Errorf(ctx, "checkout.PaymentSubmit: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newPaymentStateResp(st))
}

// PaymentReset godoc
// @Summary     Reset the payment form
// @Description Clears every field and the save-card flag. Refused only while a submission is in flight.
// @Tags        Checkout
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Success     200 {object} paymentStateResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/checkout/payment/reset [POST]
func (h *handler) PaymentReset(c *gin.Context) {
	ctx := c.Request.Context()

	s, ok := h.session(c)
	if !ok {
		return
	}

	st, err := s.Payment().Reset(ctx)
	if err != nil {
		h.l.Errorf(ctx, "checkout.PaymentReset: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newPaymentStateResp(st))
}

// ListEntries godoc
// @Summary     List submitted entries
// @Description Returns a page of this kiosk's entries from the operator backend, optionally narrowed by status.
// @Tags        Checkout
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Param       status query string false "Filter by status (draft/submitted/confirmed/rejected)"
// @Param       limit  query int    false "Page size"
// @Param       offset query int    false "Page offset"
// @Success     200 {object} listEntriesResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/checkout/entries [GET]
func (h *handler) ListEntries(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListEntriesReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListEntries(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListEntries: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListEntriesResp(output))
}

// GetEntry godoc
// @Summary     Get one entry
// @Description Returns a single entry with its backend lifecycle status.
// @Tags        Checkout
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Param       id path string true "Entry ID"
// @Success     200 {object} entryResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/checkout/entries/{id} [GET]
func (h *handler) GetEntry(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.GetEntry(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.GetEntry: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newEntryResp(output.Entry))
}

// SubmitEntry godoc
// @Summary     Hand a draft entry to review
// @Description Moves a draft entry into the operator's review queue.
// @Tags        Checkout
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Param       id path string true "Entry ID"
// @Success     200 {object} submitEntryResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/checkout/entries/{id}/submit [POST]
func (h *handler) SubmitEntry(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.SubmitEntry(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.SubmitEntry: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newSubmitEntryResp(output))
}
