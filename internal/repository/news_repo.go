package repository

import (
	"context"
	"encoding/json"

	"github.com/delevski/protfolio/internal/database"
	"github.com/delevski/protfolio/internal/models"
	"github.com/lib/pq"
)

// newsRepo is the concrete implementation of NewsRepository
type newsRepo struct {
	db      *database.DB
	watcher *Watcher
}

// NewNewsRepo creates a new AI news repository
func NewNewsRepo(db *database.DB) NewsRepository {
	return &newsRepo{db: db, watcher: NewWatcher()}
}

// BatchInsert inserts all records inside one transaction using PostgreSQL
// COPY. Any failure rolls the whole batch back; subscribers are only
// notified after a successful commit.
func (r *newsRepo) BatchInsert(ctx context.Context, records []*models.NewsRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("ai_news",
		"id", "title", "summary", "content", "date", "source_url", "image_url", "category", "tags", "created_at",
	))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rec := range records {
		tagsJSON, err := json.Marshal(rec.Tags)
		if err != nil {
			return err
		}
		if rec.Tags == nil {
			tagsJSON = []byte("[]")
		}

		if _, err := stmt.ExecContext(ctx,
			rec.ID, rec.Title, rec.Summary, rec.Content, rec.Date,
			rec.SourceURL, rec.ImageURL, rec.Category, string(tagsJSON), rec.CreatedAt,
		); err != nil {
			return err
		}
	}

	// Flush the COPY buffer
	if _, err := stmt.ExecContext(ctx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	r.watcher.Broadcast()
	return nil
}

// ListAll retrieves every news record, newest first by created_at
func (r *newsRepo) ListAll(ctx context.Context) ([]*models.NewsRecord, error) {
	query := `
		SELECT id, title, summary, content, date, source_url, image_url, category, tags, created_at
		FROM ai_news ORDER BY created_at DESC
	`
	return r.queryRecords(ctx, query)
}

// ListByDate retrieves news records for a single calendar date, newest first
func (r *newsRepo) ListByDate(ctx context.Context, date string) ([]*models.NewsRecord, error) {
	query := `
		SELECT id, title, summary, content, date, source_url, image_url, category, tags, created_at
		FROM ai_news WHERE date = $1 ORDER BY created_at DESC
	`
	return r.queryRecords(ctx, query, date)
}

// Count returns the total number of news records
func (r *newsRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM ai_news").Scan(&count)
	return count, err
}

// Subscribe registers for change notifications after committed batches
func (r *newsRepo) Subscribe(ctx context.Context) <-chan struct{} {
	return r.watcher.Subscribe(ctx)
}

func (r *newsRepo) queryRecords(ctx context.Context, query string, args ...interface{}) ([]*models.NewsRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.NewsRecord
	for rows.Next() {
		var rec models.NewsRecord
		var tagsJSON []byte

		if err := rows.Scan(
			&rec.ID, &rec.Title, &rec.Summary, &rec.Content, &rec.Date,
			&rec.SourceURL, &rec.ImageURL, &rec.Category, &tagsJSON, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}

		if err := json.Unmarshal(tagsJSON, &rec.Tags); err != nil {
			rec.Tags = []string{}
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}
