package api

import (
	"context"
	"log"
	"net/http"

	"sneakerblog/pipeline"
	"sneakerblog/state"
	"sneakerblog/types"

	"github.com/gin-gonic/gin"
)

// Pipeline is the part of pipeline.Runner the HTTP layer drives
type Pipeline interface {
	Run(ctx context.Context, trigger pipeline.Trigger) (*pipeline.RunResult, error)
	Preview(ctx context.Context) ([]types.GeneratedPost, error)
	PublishDirect(ctx context.Context, req types.PublishRequest) (*types.PublishedArticle, error)
}

// StatusSource reports recent run activity
type StatusSource interface {
	GetStatus() state.StatusResponse
}

// Handler carries the dependencies of the HTTP handlers
type Handler struct {
	pipeline Pipeline
	status   StatusSource
}

// NewHandler creates a Handler; status may be nil
func NewHandler(p Pipeline, status StatusSource) *Handler {
	return &Handler{pipeline: p, status: status}
}

// RegisterBlogRoutes registers the preview and publish endpoints.
func RegisterBlogRoutes(r *gin.Engine, h *Handler) {
	g := r.Group("/api")
	g.GET("/fetch-sneaker-news", h.handleFetchSneakerNews)
	g.POST("/publish-blog-post", h.handlePublishBlogPost)
	g.POST("/fetch-and-publish", h.handleFetchAndPublish)
}

// PostsResponse is the preview payload
type PostsResponse struct {
	Posts []types.GeneratedPost `json:"posts"`
}

// PublishResponse is returned after a direct publish
type PublishResponse struct {
	Message   string `json:"message"`
	ArticleID int64  `json:"article_id,omitempty"`
}

// handleFetchSneakerNews generates preview posts without publishing
func (h *Handler) handleFetchSneakerNews(c *gin.Context) {
	posts, err := h.pipeline.Preview(c.Request.Context())
	if err != nil {
		log.Printf("❌ Error in /api/fetch-sneaker-news: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, PostsResponse{Posts: posts})
}

// handlePublishBlogPost publishes a caller-supplied post
func (h *Handler) handlePublishBlogPost(c *gin.Context) {
	var req types.PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.pipeline.PublishDirect(c.Request.Context(), req)
	if err != nil {
		log.Printf("❌ Error publishing blog post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := PublishResponse{Message: "Blog post published successfully"}
	if article != nil {
		resp.ArticleID = article.ID
	}
	c.JSON(http.StatusOK, resp)
}

// handleFetchAndPublish runs the automatic flow synchronously
func (h *Handler) handleFetchAndPublish(c *gin.Context) {
	result, err := h.pipeline.Run(c.Request.Context(), pipeline.TriggerManual)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "run": result})
		return
	}
	c.JSON(http.StatusOK, gin.H{"run": result})
}
