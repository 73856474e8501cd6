package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterStatusRoutes registers the run status endpoint.
func RegisterStatusRoutes(r *gin.Engine, h *Handler) {
	r.GET("/api/status", h.handleStatus)
}

// handleStatus returns recent run activity
func (h *Handler) handleStatus(c *gin.Context) {
	if h.status == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "status tracking is disabled"})
		return
	}
	c.JSON(http.StatusOK, h.status.GetStatus())
}
