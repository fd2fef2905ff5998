package filter

import (
	"testing"

	"goodreads-scraper/config"
	"goodreads-scraper/models"
)

func TestApplyFiltersDefaultsKeepEverything(t *testing.T) {
	cfg := config.GetDefaultConfig()
	books := []models.Book{
		{Title: "A"},
		{Title: "B", Rating: models.IntPtr(1)},
		{Title: "C", PublishDate: models.StringPtr("Unknown")},
	}

	filtered := NewFilter(cfg).ApplyFilters(books)
	if len(filtered) != len(books) {
		t.Fatalf("ApplyFilters() = %d books, want %d", len(filtered), len(books))
	}
}

func TestApplyFiltersMinRating(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Filters.MinRating = 4

	books := []models.Book{
		{Title: "kept, 5 stars", Rating: models.IntPtr(5)},
		{Title: "dropped, 2 stars", Rating: models.IntPtr(2)},
		{Title: "kept, no rating"}, // missing field passes
	}

	filtered := NewFilter(cfg).ApplyFilters(books)
	if len(filtered) != 2 {
		t.Fatalf("ApplyFilters() = %d books, want 2", len(filtered))
	}
	for _, b := range filtered {
		if b.Rating != nil && *b.Rating < 4 {
			t.Errorf("kept book with rating %d", *b.Rating)
		}
	}
}

func TestApplyFiltersYearRange(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Filters.PublishedAfter = 1950
	cfg.Filters.PublishedBefore = 2000

	books := []models.Book{
		{Title: "kept", PublishDate: models.StringPtr("1984")},
		{Title: "too old", PublishDate: models.StringPtr("1920")},
		{Title: "too new", PublishDate: models.StringPtr("2015")},
		{Title: "non-numeric passes", PublishDate: models.StringPtr("Unknown")},
		{Title: "missing passes"},
	}

	filtered := NewFilter(cfg).ApplyFilters(books)
	if len(filtered) != 3 {
		t.Fatalf("ApplyFilters() = %d books, want 3", len(filtered))
	}
}

func TestApplyFiltersMinAvgRating(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Filters.MinAvgRating = 4.0

	books := []models.Book{
		{Title: "kept", AvgRating: models.FloatPtr(4.3)},
		{Title: "dropped", AvgRating: models.FloatPtr(3.2)},
		{Title: "missing passes"},
	}

	if filtered := NewFilter(cfg).ApplyFilters(books); len(filtered) != 2 {
		t.Fatalf("ApplyFilters() = %d books, want 2", len(filtered))
	}
}
