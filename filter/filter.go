package filter

import (
	"strconv"

	"goodreads-scraper/config"
	"goodreads-scraper/models"
)

// Filter applies filter criteria to book records
type Filter struct {
	cfg *config.Config
}

// NewFilter creates a new Filter instance
func NewFilter(cfg *config.Config) *Filter {
	return &Filter{
		cfg: cfg,
	}
}

// ApplyFilters filters books based on the configuration. Default criteria
// are all zero, which keeps every record.
func (f *Filter) ApplyFilters(books []models.Book) []models.Book {
	var filtered []models.Book

	for _, book := range books {
		if f.matchesFilters(book) {
			filtered = append(filtered, book)
		}
	}

	return filtered
}

// matchesFilters checks if a book matches all filter criteria.
// A record missing the filtered field passes: an absent rating means we
// could not extract it, not that the book failed the bar.
func (f *Filter) matchesFilters(book models.Book) bool {
	if f.cfg.Filters.MinRating > 0 && book.Rating != nil {
		if *book.Rating < f.cfg.Filters.MinRating {
			return false
		}
	}

	if f.cfg.Filters.MinAvgRating > 0 && book.AvgRating != nil {
		if *book.AvgRating < f.cfg.Filters.MinAvgRating {
			return false
		}
	}

	if (f.cfg.Filters.PublishedAfter > 0 || f.cfg.Filters.PublishedBefore > 0) && book.PublishDate != nil {
		// Non-numeric publish dates are left alone
		if year, err := strconv.Atoi(*book.PublishDate); err == nil {
			if f.cfg.Filters.PublishedAfter > 0 && year < f.cfg.Filters.PublishedAfter {
				return false
			}
			if f.cfg.Filters.PublishedBefore > 0 && year > f.cfg.Filters.PublishedBefore {
				return false
			}
		}
	}

	return true
}
