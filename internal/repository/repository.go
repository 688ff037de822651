package repository

import (
	"context"

	"github.com/delevski/protfolio/internal/database"
	"github.com/delevski/protfolio/internal/models"
)

// NewsRepository defines the interface for AI news data operations.
// Records are append-only: there are no update or delete operations.
type NewsRepository interface {
	// BatchInsert writes all records in a single transaction. Either every
	// record becomes visible or none do.
	BatchInsert(ctx context.Context, records []*models.NewsRecord) error
	ListAll(ctx context.Context) ([]*models.NewsRecord, error)
	ListByDate(ctx context.Context, date string) ([]*models.NewsRecord, error)
	Count(ctx context.Context) (int, error)
	// Subscribe returns a channel that receives a signal after every
	// committed batch. Consumers re-query the full snapshot on each signal.
	// The subscription is released when ctx is cancelled.
	Subscribe(ctx context.Context) <-chan struct{}
}

// Repositories holds all repository interfaces
type Repositories struct {
	News NewsRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		News: NewNewsRepo(db),
	}
}
