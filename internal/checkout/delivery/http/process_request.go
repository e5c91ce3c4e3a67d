package http

import (
	"github.com/gin-gonic/gin"
)

// processDataEntryFieldsReq binds the partial data-entry update body.
func (h *handler) processDataEntryFieldsReq(c *gin.Context) (dataEntryFieldsReq, error) {
	var req dataEntryFieldsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processPaymentFieldReq binds the single payment field body.
func (h *handler) processPaymentFieldReq(c *gin.Context) (paymentFieldReq, error) {
	var req paymentFieldReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSaveCardReq binds the save-card toggle body.
func (h *handler) processSaveCardReq(c *gin.Context) (saveCardReq, error) {
	var req saveCardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListEntriesReq binds the entry listing query parameters.
func (h *handler) processListEntriesReq(c *gin.Context) (listEntriesReq, error) {
	var req listEntriesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
