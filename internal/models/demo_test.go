package models

import (
	"testing"
)

func TestDemoNews_DateAnchoring(t *testing.T) {
	today := "2024-06-10"
	records := DemoNews(today)

	if len(records) != 8 {
		t.Fatalf("Expected 8 demo records, got %d", len(records))
	}

	counts := map[string]int{}
	for _, rec := range records {
		counts[rec.Date]++
	}

	if counts["2024-06-10"] != 4 {
		t.Errorf("Expected 4 records for today, got %d", counts["2024-06-10"])
	}
	if counts["2024-06-09"] != 2 {
		t.Errorf("Expected 2 records for yesterday, got %d", counts["2024-06-09"])
	}
	if counts["2024-06-08"] != 2 {
		t.Errorf("Expected 2 records for two days ago, got %d", counts["2024-06-08"])
	}
}

func TestDemoNews_Deterministic(t *testing.T) {
	a := DemoNews("2024-06-10")
	b := DemoNews("2024-06-10")

	for i := range a {
		if a[i].ID != b[i].ID || a[i].CreatedAt != b[i].CreatedAt || a[i].Date != b[i].Date {
			t.Errorf("Demo record %d differs between calls", i)
		}
	}
}

func TestDemoNews_RecordShape(t *testing.T) {
	for _, rec := range DemoNews("2024-06-10") {
		if rec.ID == "" || rec.Title == "" || rec.Summary == "" || rec.Content == "" ||
			rec.SourceURL == "" || rec.Category == "" {
			t.Errorf("Demo record %q is missing required fields", rec.ID)
		}
		if rec.Tags == nil {
			t.Errorf("Demo record %q should carry tags", rec.ID)
		}
		if rec.CreatedAt == 0 {
			t.Errorf("Demo record %q should carry a createdAt timestamp", rec.ID)
		}
	}
}
