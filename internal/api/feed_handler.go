package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/delevski/protfolio/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// FeedHandler handles the date-grouped news display routes
type FeedHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(services *service.Services, log zerolog.Logger) *FeedHandler {
	return &FeedHandler{
		services: services,
		log:      log.With().Str("handler", "feed").Logger(),
	}
}

// Overview handles GET /ai-news
func (h *FeedHandler) Overview(c *gin.Context) {
	ctx := c.Request.Context()
	today := time.Now().Format("2006-01-02")

	overview, err := h.services.Feed.Overview(ctx, today)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to build feed overview")
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "Unable to fetch the latest AI news"})
		return
	}

	c.JSON(http.StatusOK, overview)
}

// ByDate handles GET /ai-news/:date
func (h *FeedHandler) ByDate(c *gin.Context) {
	ctx := c.Request.Context()
	date := c.Param("date")
	today := time.Now().Format("2006-01-02")

	day, err := h.services.Feed.ByDate(ctx, date, today)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid date parameter. Expected YYYY-MM-DD"})
			return
		}
		h.log.Error().Err(err).Str("date", date).Msg("Failed to build date view")
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "Unable to fetch the latest AI news"})
		return
	}

	c.JSON(http.StatusOK, day)
}
