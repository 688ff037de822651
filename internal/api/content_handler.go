package api

import (
	"net/http"

	"github.com/delevski/protfolio/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ContentHandler serves static portfolio content
type ContentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(services *service.Services, log zerolog.Logger) *ContentHandler {
	return &ContentHandler{
		services: services,
		log:      log.With().Str("handler", "content").Logger(),
	}
}

// GetSkills handles GET /api/skills
func (h *ContentHandler) GetSkills(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Content.Skills())
}
