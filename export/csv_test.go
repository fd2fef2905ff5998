package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"goodreads-scraper/models"
)

func TestWriteCSVEmptySet(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "empty.csv")

	if err := WriteCSV(filename, nil); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	if _, err := os.Stat(filename); !os.IsNotExist(err) {
		t.Errorf("expected no file for empty record set, stat err = %v", err)
	}
}

func TestWriteCSVTwoRecords(t *testing.T) {
	full := models.Book{
		Title:       "The Hobbit",
		Author:      models.StringPtr("J.R.R. Tolkien"),
		PublishDate: models.StringPtr("1937"),
		ISBN:        models.StringPtr("0547928226"),
		Rating:      models.IntPtr(5),
		AvgRating:   models.FloatPtr(4.29),
		Pages:       models.IntPtr(366),
		BookURL:     models.StringPtr("https://www.goodreads.com/book/show/5907"),
		AuthorURL:   models.StringPtr("https://www.goodreads.com/author/show/656983"),
		Shelf:       models.ShelfRead,
	}
	sparse := models.Book{
		Title: "Mystery Pamphlet",
		Shelf: models.ShelfCurrentlyReading,
	}

	filename := filepath.Join(t.TempDir(), "books.csv")
	if err := WriteCSV(filename, []models.Book{full, sparse}); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	f, err := os.Open(filename)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}
	if !reflect.DeepEqual(rows[0], Columns) {
		t.Errorf("header = %v, want %v", rows[0], Columns)
	}

	wantFull := []string{
		"The Hobbit", "J.R.R. Tolkien", "1937", "0547928226", "5",
		"4.29", "366", "https://www.goodreads.com/book/show/5907",
		"https://www.goodreads.com/author/show/656983", "read",
	}
	if !reflect.DeepEqual(rows[1], wantFull) {
		t.Errorf("row 1 = %v, want %v", rows[1], wantFull)
	}

	wantSparse := []string{
		"Mystery Pamphlet", "", "", "", "", "", "", "", "", "currently-reading",
	}
	if !reflect.DeepEqual(rows[2], wantSparse) {
		t.Errorf("row 2 = %v, want %v", rows[2], wantSparse)
	}
}

func TestWriteCSVBadPath(t *testing.T) {
	err := WriteCSV(filepath.Join(t.TempDir(), "no-such-dir", "books.csv"),
		[]models.Book{{Title: "Book", Shelf: models.ShelfRead}})
	if err == nil {
		t.Fatal("WriteCSV() = nil error, want failure for unwritable path")
	}
}
