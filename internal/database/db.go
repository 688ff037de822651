package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/delevski/protfolio/internal/config"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
)

// DB wraps the sql.DB connection with additional functionality
type DB struct {
	*sql.DB
	log zerolog.Logger
}

// newsSchema is the single table this service owns. The schema is applied
// idempotently at startup; there is no migration history to track for one
// append-only table.
const newsSchema = `
CREATE TABLE IF NOT EXISTS ai_news (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	summary    TEXT NOT NULL,
	content    TEXT NOT NULL,
	date       TEXT NOT NULL,
	source_url TEXT NOT NULL,
	image_url  TEXT NOT NULL DEFAULT '',
	category   TEXT NOT NULL,
	tags       JSONB NOT NULL DEFAULT '[]',
	created_at BIGINT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_ai_news_date ON ai_news (date);
`

// New creates a new database connection with connection pooling
func New(cfg *config.DatabaseConfig, log zerolog.Logger) (*DB, error) {
	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MaxLifetime)

	// Test connection with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	wrapper := &DB{
		DB:  db,
		log: log.With().Str("component", "database").Logger(),
	}

	wrapper.log.Info().
		Str("host", cfg.Host).
		Str("database", cfg.Name).
		Int("max_open_conns", cfg.MaxOpenConns).
		Msg("Database connection established")

	return wrapper, nil
}

// EnsureSchema applies the ai_news table definition if it does not exist yet.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, newsSchema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	db.log.Info().Msg("Schema ensured")
	return nil
}

// HealthCheck verifies the database connection is healthy
func (db *DB) HealthCheck(ctx context.Context) error {
	return db.PingContext(ctx)
}

// Stats returns database connection pool statistics
func (db *DB) Stats() sql.DBStats {
	return db.DB.Stats()
}
