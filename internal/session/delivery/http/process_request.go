package http

import (
	"github.com/gin-gonic/gin"
)

// processSearchValueReq binds the search value body.
func (h *handler) processSearchValueReq(c *gin.Context) (searchValueReq, error) {
	var req searchValueReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
