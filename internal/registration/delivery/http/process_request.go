package http

import (
	"github.com/gin-gonic/gin"
)

// processSetupReq binds and validates the setup request body.
func (h *handler) processSetupReq(c *gin.Context) (setupReq, error) {
	var req setupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
