package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/delevski/protfolio/internal/config"
	"github.com/delevski/protfolio/internal/mocks"
	"github.com/delevski/protfolio/internal/models"
	"github.com/delevski/protfolio/internal/repository"
	"github.com/delevski/protfolio/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func setupFeed() (service.FeedService, *mocks.MockNewsRepository) {
	mockRepo := mocks.NewMockNewsRepository()
	repos := &repository.Repositories{News: mockRepo}
	services := service.NewServices(repos, &config.Config{}, zerolog.Nop())
	return services.Feed, mockRepo
}

func record(id, date string, createdAt int64) *models.NewsRecord {
	return &models.NewsRecord{
		ID:        id,
		Title:     "Title " + id,
		Summary:   "Summary",
		Content:   "Content",
		Date:      date,
		SourceURL: "https://example.com",
		Category:  "Research",
		Tags:      []string{},
		CreatedAt: createdAt,
	}
}

func TestGroupByDate_Ordering(t *testing.T) {
	records := []*models.NewsRecord{
		record("a", "2024-06-02", 100),
		record("b", "2024-06-01", 300),
		record("c", "2024-06-02", 200),
	}

	groups := service.GroupByDate(records)

	require.Len(t, groups, 2)
	require.Equal(t, "2024-06-02", groups[0].Date)
	require.Equal(t, "2024-06-01", groups[1].Date)

	// Within the 2024-06-02 group: createdAt descending
	require.Equal(t, []int64{200, 100}, []int64{groups[0].Items[0].CreatedAt, groups[0].Items[1].CreatedAt})
}

func TestGroupByDate_Idempotent(t *testing.T) {
	records := []*models.NewsRecord{
		record("a", "2024-06-02", 100),
		record("b", "2024-06-01", 300),
		record("c", "2024-06-02", 200),
		record("d", "2024-05-30", 50),
	}

	first := service.GroupByDate(records)
	second := service.GroupByDate(records)
	require.Equal(t, first, second)
}

func TestGroupByDate_Empty(t *testing.T) {
	require.Empty(t, service.GroupByDate(nil))
}

func TestOverview_HeroExtraction(t *testing.T) {
	feed, repo := setupFeed()
	today := "2024-06-02"

	repo.Records = []*models.NewsRecord{
		record("a", "2024-06-02", 100),
		record("b", "2024-06-01", 300),
		record("c", "2024-06-02", 200),
	}

	overview, err := feed.Overview(context.Background(), today)
	require.NoError(t, err)
	require.False(t, overview.Demo)

	require.Len(t, overview.TodayNews, 2)
	require.Equal(t, "c", overview.TodayNews[0].ID)
	require.Equal(t, "a", overview.TodayNews[1].ID)

	// Today's group is excluded from other days
	require.Len(t, overview.OtherDays, 1)
	require.Equal(t, "2024-06-01", overview.OtherDays[0].Date)
}

func TestOverview_NoNewsToday(t *testing.T) {
	feed, repo := setupFeed()

	repo.Records = []*models.NewsRecord{
		record("a", "2024-06-01", 100),
	}

	overview, err := feed.Overview(context.Background(), "2024-06-02")
	require.NoError(t, err)
	require.Empty(t, overview.TodayNews)
	require.Len(t, overview.OtherDays, 1)
}

func TestOverview_DemoFallback(t *testing.T) {
	feed, _ := setupFeed()
	today := "2024-06-02"

	overview, err := feed.Overview(context.Background(), today)
	require.NoError(t, err)
	require.True(t, overview.Demo)

	// Demo set anchors its newest entries to the caller's current date
	require.NotEmpty(t, overview.TodayNews)
	for _, item := range overview.TodayNews {
		require.Equal(t, today, item.Date)
	}
	require.NotEmpty(t, overview.OtherDays)
}

func TestOverview_SingleRecordSuppressesDemo(t *testing.T) {
	feed, repo := setupFeed()
	today := "2024-06-02"

	repo.Records = []*models.NewsRecord{record("a", today, 100)}

	overview, err := feed.Overview(context.Background(), today)
	require.NoError(t, err)
	require.False(t, overview.Demo)
	require.Len(t, overview.TodayNews, 1)
	require.Equal(t, "a", overview.TodayNews[0].ID)
	require.Empty(t, overview.OtherDays)
}

func TestByDate(t *testing.T) {
	feed, repo := setupFeed()

	repo.Records = []*models.NewsRecord{
		record("a", "2024-06-02", 100),
		record("b", "2024-06-01", 300),
		record("c", "2024-06-02", 200),
	}

	day, err := feed.ByDate(context.Background(), "2024-06-02", "2024-06-03")
	require.NoError(t, err)
	require.Equal(t, "2024-06-02", day.Date)
	require.Len(t, day.Items, 2)
	require.Equal(t, "c", day.Items[0].ID)
	require.Equal(t, "a", day.Items[1].ID)
	require.False(t, day.Demo)
}

func TestByDate_NoResultsIsNotAnError(t *testing.T) {
	feed, repo := setupFeed()
	repo.Records = []*models.NewsRecord{record("a", "2024-06-02", 100)}

	day, err := feed.ByDate(context.Background(), "2024-06-09", "2024-06-10")
	require.NoError(t, err)
	require.Empty(t, day.Items)
}

func TestByDate_InvalidDate(t *testing.T) {
	feed, repo := setupFeed()
	repo.Records = []*models.NewsRecord{record("a", "2024-06-02", 100)}

	tests := []string{"2026-02-30", "2024-13-40", "2024-1-1", "not-a-date"}
	for _, date := range tests {
		t.Run(date, func(t *testing.T) {
			_, err := feed.ByDate(context.Background(), date, "2024-06-02")
			require.ErrorIs(t, err, service.ErrInvalidDate)
		})
	}
}

func TestFeed_StoreErrorIsDistinctFromEmpty(t *testing.T) {
	feed, repo := setupFeed()
	repo.ListError = fmt.Errorf("connection refused")

	_, err := feed.Overview(context.Background(), "2024-06-02")
	require.Error(t, err)
	require.ErrorIs(t, err, service.ErrFeedUnavailable)
	require.False(t, errors.Is(err, service.ErrInvalidDate))

	_, err = feed.ByDate(context.Background(), "2024-06-02", "2024-06-02")
	require.ErrorIs(t, err, service.ErrFeedUnavailable)
}

func TestFeed_SubscriptionRefresh(t *testing.T) {
	feed, repo := setupFeed()
	today := "2024-06-02"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	feed.Start(ctx)

	overview, err := feed.Overview(ctx, today)
	require.NoError(t, err)
	require.True(t, overview.Demo)

	require.NoError(t, repo.BatchInsert(ctx, []*models.NewsRecord{record("a", today, 100)}))

	// The watcher delivers asynchronously
	require.Eventually(t, func() bool {
		overview, err := feed.Overview(ctx, today)
		return err == nil && !overview.Demo
	}, 2*time.Second, 10*time.Millisecond)
}
