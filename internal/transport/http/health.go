package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports basic liveness for load balancers and orchestrators.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
