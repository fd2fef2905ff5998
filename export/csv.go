package export

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"

	"goodreads-scraper/models"
)

// Columns is the fixed CSV column order
var Columns = []string{
	"title", "author", "publish_date", "isbn", "rating",
	"avg_rating", "pages", "book_url", "author_url", "shelf",
}

// WriteCSV writes books to a CSV file with the fixed column order, absent
// fields rendered as empty strings. An empty record set is a no-op: it logs
// a notice and creates no file.
func WriteCSV(filename string, books []models.Book) error {
	if len(books) == 0 {
		log.Println("No books to save")
		return nil
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, book := range books {
		if err := w.Write(Row(book)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", filename, err)
	}

	log.Printf("Books saved to %s\n", filename)
	return nil
}

// Row renders one book in the fixed column order
func Row(book models.Book) []string {
	return []string{
		book.Title,
		strOrEmpty(book.Author),
		strOrEmpty(book.PublishDate),
		strOrEmpty(book.ISBN),
		intOrEmpty(book.Rating),
		floatOrEmpty(book.AvgRating),
		intOrEmpty(book.Pages),
		strOrEmpty(book.BookURL),
		strOrEmpty(book.AuthorURL),
		string(book.Shelf),
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intOrEmpty(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func floatOrEmpty(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'g', -1, 64)
}
