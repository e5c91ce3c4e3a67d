package http

import (
	"github.com/gin-gonic/gin"
)

// processAddReq binds and normalizes the add-to-cart body.
func (h *handler) processAddReq(c *gin.Context) (addReq, error) {
	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSetQuantityReq binds the direct quantity body.
func (h *handler) processSetQuantityReq(c *gin.Context) (setQuantityReq, error) {
	var req setQuantityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processInstructionsReq binds the instructions draft body.
func (h *handler) processInstructionsReq(c *gin.Context) (instructionsReq, error) {
	var req instructionsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
