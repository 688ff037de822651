package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/delevski/protfolio/internal/models"
	"github.com/delevski/protfolio/internal/repository"
	"github.com/delevski/protfolio/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// ErrMalformedBody signals a request body that is not valid JSON.
var ErrMalformedBody = errors.New("invalid JSON in request body")

// ValidationError carries the user-facing message for a rejected submission.
// In batch mode the message names the 1-based item index.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ingestService is the concrete implementation of IngestService
type ingestService struct {
	repo repository.NewsRepository
	log  zerolog.Logger
}

// newIngestService creates a new IngestService
func newIngestService(repo repository.NewsRepository, log zerolog.Logger) *ingestService {
	return &ingestService{
		repo: repo,
		log:  log.With().Str("service", "ingest").Logger(),
	}
}

// Ingest parses, validates, normalizes and persists a submission body.
func (s *ingestService) Ingest(ctx context.Context, body []byte) (*models.IngestResult, error) {
	items, batch, err := decodeSubmission(body)
	if err != nil {
		return nil, err
	}

	// Validate every item before any write occurs
	records := make([]*models.NewsRecord, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, itemError(batch, i, "Invalid payload: expected an object")
		}

		rec, errs := validation.ParseNewsItem(obj)
		if len(errs) > 0 {
			return nil, itemError(batch, i, errs[0].Message)
		}
		records = append(records, rec)
	}

	now := time.Now().UnixMilli()
	for _, rec := range records {
		rec.ID = uuid.New().String()
		rec.CreatedAt = now
	}

	if err := s.repo.BatchInsert(ctx, records); err != nil {
		s.log.Error().Err(err).Int("count", len(records)).Msg("Failed to persist news batch")
		return nil, fmt.Errorf("failed to persist news records: %w", err)
	}

	ids := lo.Map(records, func(rec *models.NewsRecord, _ int) string { return rec.ID })

	s.log.Info().
		Int("count", len(ids)).
		Bool("batch", batch).
		Msg("News records created")

	return &models.IngestResult{IDs: ids, Batch: batch}, nil
}

// decodeSubmission splits the body into individual items and reports whether
// it was submitted in batch (array) form.
func decodeSubmission(body []byte) ([]interface{}, bool, error) {
	var raw interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, false, ErrMalformedBody
	}

	if list, ok := raw.([]interface{}); ok {
		if len(list) == 0 {
			return nil, true, &ValidationError{Message: "Batch must contain at least one item"}
		}
		return list, true, nil
	}
	return []interface{}{raw}, false, nil
}

// itemError prefixes the 1-based item index in batch mode.
func itemError(batch bool, index int, message string) error {
	if batch {
		return &ValidationError{Message: fmt.Sprintf("Item %d: %s", index+1, message)}
	}
	return &ValidationError{Message: message}
}
