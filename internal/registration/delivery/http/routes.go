package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	integrations := rg.Group("/integrations")
	{
		integrations.POST("/setup", h.Setup)
	}
}
