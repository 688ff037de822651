package models

// NewsRecord represents a single AI news item in the system.
// Records are created by the ingestion endpoint and never mutated afterwards.
type NewsRecord struct {
	ID        string   `json:"id" db:"id"`
	Title     string   `json:"title" db:"title"`
	Summary   string   `json:"summary" db:"summary"`
	Content   string   `json:"content" db:"content"`
	Date      string   `json:"date" db:"date"` // YYYY-MM-DD
	SourceURL string   `json:"sourceUrl" db:"source_url"`
	ImageURL  string   `json:"imageUrl" db:"image_url"`
	Category  string   `json:"category" db:"category"`
	Tags      []string `json:"tags" db:"-"` // Stored as JSONB in DB
	CreatedAt int64    `json:"createdAt" db:"created_at"` // epoch milliseconds
}

// RequiredNewsFields lists the submission fields that must be non-empty strings.
var RequiredNewsFields = []string{"title", "summary", "content", "date", "sourceUrl", "category"}

// FeedGroup is one day-bucket of news, items ordered newest-first by createdAt.
type FeedGroup struct {
	Date  string        `json:"date"`
	Items []*NewsRecord `json:"items"`
}

// FeedOverview is the view model for the news listing page. TodayNews holds
// the hero content for the caller's current date; OtherDays excludes it.
type FeedOverview struct {
	Date      string        `json:"date"`
	TodayNews []*NewsRecord `json:"todayNews"`
	OtherDays []FeedGroup   `json:"otherDays"`
	Demo      bool          `json:"demo"`
}

// FeedDay is the view model for a single-date detail page.
type FeedDay struct {
	Date  string        `json:"date"`
	Items []*NewsRecord `json:"items"`
	Demo  bool          `json:"demo"`
}

// IngestResult reports a successful ingestion.
type IngestResult struct {
	IDs   []string
	Batch bool
}
