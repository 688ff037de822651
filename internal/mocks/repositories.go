package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/delevski/protfolio/internal/models"
	"github.com/delevski/protfolio/internal/repository"
)

// MockNewsRepository is a mock implementation of NewsRepository
type MockNewsRepository struct {
	mu               sync.Mutex
	Records          []*models.NewsRecord
	InsertError      error
	ListError        error
	BatchInsertCalls int

	watcher *repository.Watcher
}

func NewMockNewsRepository() *MockNewsRepository {
	return &MockNewsRepository{
		watcher: repository.NewWatcher(),
	}
}

func (m *MockNewsRepository) BatchInsert(ctx context.Context, records []*models.NewsRecord) error {
	m.mu.Lock()
	m.BatchInsertCalls++
	if m.InsertError != nil {
		m.mu.Unlock()
		return m.InsertError
	}
	m.Records = append(m.Records, records...)
	m.mu.Unlock()

	m.watcher.Broadcast()
	return nil
}

func (m *MockNewsRepository) ListAll(ctx context.Context) ([]*models.NewsRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListError != nil {
		return nil, m.ListError
	}
	out := make([]*models.NewsRecord, len(m.Records))
	copy(out, m.Records)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

func (m *MockNewsRepository) ListByDate(ctx context.Context, date string) ([]*models.NewsRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListError != nil {
		return nil, m.ListError
	}
	var out []*models.NewsRecord
	for _, rec := range m.Records {
		if rec.Date == date {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

func (m *MockNewsRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListError != nil {
		return 0, m.ListError
	}
	return len(m.Records), nil
}

func (m *MockNewsRepository) Subscribe(ctx context.Context) <-chan struct{} {
	return m.watcher.Subscribe(ctx)
}

// Get returns a stored record by ID, or nil.
func (m *MockNewsRepository) Get(id string) *models.NewsRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rec := range m.Records {
		if rec.ID == id {
			return rec
		}
	}
	return nil
}
