package report

import (
	"reflect"
	"testing"

	"goodreads-scraper/models"
)

func bookWithYear(year string) models.Book {
	return models.Book{Title: "t", PublishDate: models.StringPtr(year)}
}

func bookByAuthor(author string) models.Book {
	return models.Book{Title: "t", Author: models.StringPtr(author)}
}

func TestDecadeHistogram(t *testing.T) {
	books := []models.Book{
		bookWithYear("1920"),
		bookWithYear("1925"),
		bookWithYear("1937"),
		bookWithYear("Unknown"), // non-numeric dates are skipped
		{Title: "no date"},
	}

	got := DecadeHistogram(books)
	want := map[int]int{1920: 2, 1930: 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecadeHistogram() = %v, want %v", got, want)
	}
}

func TestTopAuthors(t *testing.T) {
	books := []models.Book{
		bookByAuthor("Le Guin"),
		bookByAuthor("Tolkien"),
		bookByAuthor("Le Guin"),
		bookByAuthor("Borges"),
		bookByAuthor("Tolkien"),
		bookByAuthor("Le Guin"),
		{Title: "anonymous"},
	}

	got := TopAuthors(books, 10)
	want := []AuthorCount{
		{"Le Guin", 3},
		{"Tolkien", 2},
		{"Borges", 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopAuthors() = %v, want %v", got, want)
	}
}

func TestTopAuthorsTiesKeepFirstSeenOrder(t *testing.T) {
	books := []models.Book{
		bookByAuthor("B"),
		bookByAuthor("A"),
		bookByAuthor("C"),
		bookByAuthor("A"),
		bookByAuthor("B"),
		bookByAuthor("C"),
	}

	got := TopAuthors(books, 10)
	want := []AuthorCount{{"B", 2}, {"A", 2}, {"C", 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopAuthors() = %v, want first-seen order on ties %v", got, want)
	}
}

func TestTopAuthorsTruncates(t *testing.T) {
	var books []models.Book
	for _, a := range []string{"a", "b", "c", "d"} {
		books = append(books, bookByAuthor(a))
	}

	if got := TopAuthors(books, 2); len(got) != 2 {
		t.Errorf("TopAuthors(n=2) returned %d entries", len(got))
	}
}
