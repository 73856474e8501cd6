package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery and permissive CORS
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	// Register resource routers
	RegisterHealthRoutes(r)
	RegisterBlogRoutes(r, h)
	RegisterStatusRoutes(r, h)
	return r
}

// corsMiddleware allows any origin
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// RegisterHealthRoutes registers the liveness endpoints.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Sneaker Blog API is live 🚀")
	})
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
