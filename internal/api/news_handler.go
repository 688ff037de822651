package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/delevski/protfolio/internal/config"
	"github.com/delevski/protfolio/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewsHandler handles the AI news ingestion endpoint
type NewsHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewNewsHandler creates a new NewsHandler
func NewNewsHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *NewsHandler {
	return &NewsHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "news").Logger(),
	}
}

// Create handles POST /api/ai-news
// Accepts a single news object or an array of them. Authentication runs
// before the body is read; validation runs before any write.
func (h *NewsHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	if h.cfg.News.APIKey == "" {
		h.log.Error().Msg("AI_NEWS_API_KEY environment variable is not set")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server configuration error"})
		return
	}

	apiKey := c.GetHeader("X-API-Key")
	if apiKey == "" || apiKey != h.cfg.News.APIKey {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized: Invalid or missing API key"})
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to read request body")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
		return
	}

	result, err := h.services.Ingest.Ingest(ctx, body)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.Is(err, service.ErrMalformedBody):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON in request body"})
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": vErr.Message})
		default:
			h.log.Error().Err(err).Msg("Error creating AI news records")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
		}
		return
	}

	if result.Batch {
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": fmt.Sprintf("Created %d news records", len(result.IDs)),
			"ids":     result.IDs,
			"count":   len(result.IDs),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": result.IDs[0]})
}

// MethodNotAllowed rejects non-POST requests to the ingestion endpoint
func (h *NewsHandler) MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{
		"success": false,
		"error":   "Method not allowed. Use POST to create records.",
	})
}
