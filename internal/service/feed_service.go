package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/delevski/protfolio/internal/models"
	"github.com/delevski/protfolio/internal/repository"
	"github.com/delevski/protfolio/internal/validation"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// ErrInvalidDate signals a malformed date path parameter. Callers must treat
// it as a distinct state, not as an empty result.
var ErrInvalidDate = errors.New("invalid date parameter, expected YYYY-MM-DD")

// ErrFeedUnavailable signals that the store could not be queried.
var ErrFeedUnavailable = errors.New("news feed unavailable")

// feedService keeps a full snapshot of the news collection, refreshed on
// every repository change signal, and derives grouped view models from it.
type feedService struct {
	repo repository.NewsRepository
	log  zerolog.Logger

	mu      sync.RWMutex
	records []*models.NewsRecord
	loaded  bool
	loadErr error
}

// newFeedService creates a new FeedService
func newFeedService(repo repository.NewsRepository, log zerolog.Logger) *feedService {
	return &feedService{
		repo: repo,
		log:  log.With().Str("service", "feed").Logger(),
	}
}

// Start loads the initial snapshot and follows the change subscription.
func (s *feedService) Start(ctx context.Context) {
	if err := s.refresh(ctx); err != nil {
		s.log.Error().Err(err).Msg("Initial feed load failed")
	}

	updates := s.repo.Subscribe(ctx)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-updates:
				if !ok {
					return
				}
				if err := s.refresh(ctx); err != nil {
					s.log.Error().Err(err).Msg("Feed refresh failed")
				}
			}
		}
	}()
}

// Overview derives the date-grouped view model for the listing page.
func (s *feedService) Overview(ctx context.Context, today string) (*models.FeedOverview, error) {
	records, demo, err := s.active(ctx, today)
	if err != nil {
		return nil, err
	}

	groups := GroupByDate(records)

	todayNews := []*models.NewsRecord{}
	otherDays := make([]models.FeedGroup, 0, len(groups))
	for _, g := range groups {
		if g.Date == today {
			todayNews = g.Items
			continue
		}
		otherDays = append(otherDays, g)
	}

	return &models.FeedOverview{
		Date:      today,
		TodayNews: todayNews,
		OtherDays: otherDays,
		Demo:      demo,
	}, nil
}

// ByDate derives the detail view for one calendar date.
func (s *feedService) ByDate(ctx context.Context, date, today string) (*models.FeedDay, error) {
	if !validation.ValidDate(date) {
		return nil, ErrInvalidDate
	}

	records, demo, err := s.active(ctx, today)
	if err != nil {
		return nil, err
	}

	items := lo.Filter(records, func(r *models.NewsRecord, _ int) bool { return r.Date == date })
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt > items[j].CreatedAt })

	return &models.FeedDay{Date: date, Items: items, Demo: demo}, nil
}

// active returns the record set to render: the live snapshot, or the demo
// dataset when the store was queried successfully and holds nothing. The
// demo decision is re-derived on every call, so it disarms as soon as real
// records arrive and re-arms if the store empties again.
func (s *feedService) active(ctx context.Context, today string) ([]*models.NewsRecord, bool, error) {
	s.mu.RLock()
	records, loaded, loadErr := s.records, s.loaded, s.loadErr
	s.mu.RUnlock()

	if !loaded || loadErr != nil {
		if err := s.refresh(ctx); err != nil {
			return nil, false, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
		}
		s.mu.RLock()
		records = s.records
		s.mu.RUnlock()
	}

	if len(records) == 0 {
		return models.DemoNews(today), true, nil
	}
	return records, false, nil
}

// refresh re-queries the full snapshot.
func (s *feedService) refresh(ctx context.Context) error {
	records, err := s.repo.ListAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.loadErr = err
		return err
	}
	s.records = records
	s.loaded = true
	s.loadErr = nil
	return nil
}

// GroupByDate partitions records into one group per distinct date. Groups are
// ordered by date descending (lexicographic works for zero-padded YYYY-MM-DD)
// and items within a group by createdAt descending. The input is not mutated,
// so re-running over an unchanged set yields an identical result.
func GroupByDate(records []*models.NewsRecord) []models.FeedGroup {
	grouped := lo.GroupBy(records, func(r *models.NewsRecord) string { return r.Date })

	groups := make([]models.FeedGroup, 0, len(grouped))
	for date, items := range grouped {
		sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt > items[j].CreatedAt })
		groups = append(groups, models.FeedGroup{Date: date, Items: items})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Date > groups[j].Date })
	return groups
}
