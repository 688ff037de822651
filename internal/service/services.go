package service

import (
	"context"

	"github.com/delevski/protfolio/internal/config"
	"github.com/delevski/protfolio/internal/models"
	"github.com/delevski/protfolio/internal/repository"
	"github.com/rs/zerolog"
)

// IngestService defines the interface for accepting news submissions
type IngestService interface {
	// Ingest validates and persists a JSON body that is either a single
	// news object or an array of them. All-or-nothing: the first invalid
	// item rejects the whole batch before any write.
	Ingest(ctx context.Context, body []byte) (*models.IngestResult, error)
}

// FeedService defines the interface for the date-grouped news feed
type FeedService interface {
	// Start loads the initial snapshot and keeps it refreshed from the
	// repository's change subscription until ctx is cancelled.
	Start(ctx context.Context)
	Overview(ctx context.Context, today string) (*models.FeedOverview, error)
	ByDate(ctx context.Context, date, today string) (*models.FeedDay, error)
}

// ContentService defines the interface for static portfolio content
type ContentService interface {
	Skills() []models.SkillCategory
}

// Services holds all service interfaces
type Services struct {
	Ingest  IngestService
	Feed    FeedService
	Content ContentService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Ingest:  newIngestService(repos.News, log),
		Feed:    newFeedService(repos.News, log),
		Content: newContentService(log),
	}
}
