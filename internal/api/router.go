package api

import (
	"net/http"
	"time"

	"github.com/delevski/protfolio/internal/config"
	"github.com/delevski/protfolio/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	newsHandler := NewNewsHandler(services, cfg, log)
	feedHandler := NewFeedHandler(services, log)
	contentHandler := NewContentHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)

	// Ingestion API
	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/ai-news", newsHandler.Create)
		// Only POST creates records; everything else is rejected explicitly
		apiGroup.GET("/ai-news", newsHandler.MethodNotAllowed)
		apiGroup.PUT("/ai-news", newsHandler.MethodNotAllowed)
		apiGroup.PATCH("/ai-news", newsHandler.MethodNotAllowed)
		apiGroup.DELETE("/ai-news", newsHandler.MethodNotAllowed)

		apiGroup.GET("/skills", contentHandler.GetSkills)
	}

	// Feed display routes
	router.GET("/ai-news", feedHandler.Overview)
	router.GET("/ai-news/:date", feedHandler.ByDate)

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "portfolio-api",
	})
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error":   "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
