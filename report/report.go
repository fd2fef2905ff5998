package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"goodreads-scraper/models"
)

const rule = "================================================================================"

// PrintProfile prints the public profile information, if any was found
func PrintProfile(p models.Profile) {
	if p.IsEmpty() {
		return
	}
	fmt.Println("Profile information:")
	if p.DisplayName != "" {
		fmt.Printf("  display_name: %s\n", p.DisplayName)
	}
	if p.Location != "" {
		fmt.Printf("  location: %s\n", p.Location)
	}
	if p.MemberSince != "" {
		fmt.Printf("  member_since: %s\n", p.MemberSince)
	}
	fmt.Println()
}

// DecadeHistogram buckets books by the decade of their publish year.
// Records with no publish date or a non-numeric one are skipped.
func DecadeHistogram(books []models.Book) map[int]int {
	decades := make(map[int]int)
	for _, book := range books {
		if book.PublishDate == nil {
			continue
		}
		year, err := strconv.Atoi(*book.PublishDate)
		if err != nil {
			continue
		}
		decades[(year/10)*10]++
	}
	return decades
}

// AuthorCount is one row of the top-authors ranking
type AuthorCount struct {
	Author string
	Count  int
}

// TopAuthors ranks authors by book count, descending, keeping at most n.
// Ties keep first-seen order.
func TopAuthors(books []models.Book, n int) []AuthorCount {
	counts := make(map[string]int)
	var order []string
	for _, book := range books {
		if book.Author == nil {
			continue
		}
		if _, seen := counts[*book.Author]; !seen {
			order = append(order, *book.Author)
		}
		counts[*book.Author]++
	}

	ranked := make([]AuthorCount, 0, len(order))
	for _, author := range order {
		ranked = append(ranked, AuthorCount{Author: author, Count: counts[author]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// PrintSummary prints the totals, decade histogram and top-10 authors for
// one set of books
func PrintSummary(heading string, books []models.Book) {
	fmt.Printf("\n%s\n", rule)
	fmt.Println(heading)
	fmt.Println(rule)

	if len(books) == 0 {
		fmt.Println("No books found")
		return
	}

	fmt.Printf("Total books: %d\n", len(books))

	decades := DecadeHistogram(books)
	if len(decades) > 0 {
		keys := make([]int, 0, len(decades))
		for decade := range decades {
			keys = append(keys, decade)
		}
		sort.Ints(keys)

		fmt.Println("\nBooks by decade:")
		for _, decade := range keys {
			fmt.Printf("  %ds: %d books\n", decade, decades[decade])
		}
	}

	authors := TopAuthors(books, 10)
	if len(authors) > 0 {
		fmt.Println("\nTop authors:")
		for _, ac := range authors {
			fmt.Printf("  %s: %d books\n", ac.Author, ac.Count)
		}
	}
}

// PrintCurrentlyReading lists the currently-reading books one by one
func PrintCurrentlyReading(books []models.Book) {
	if len(books) == 0 {
		return
	}

	fmt.Printf("\n%s\n", rule)
	fmt.Println("CURRENTLY READING SUMMARY")
	fmt.Println(rule)
	fmt.Printf("Total currently reading books: %d\n\n", len(books))
	fmt.Println("Currently reading books:")
	for i, book := range books {
		fmt.Printf("%d. %s by %s\n", i+1, book.Title, orUnknown(book.Author))
		if book.PublishDate != nil {
			fmt.Printf("   Published: %s\n", *book.PublishDate)
		}
		if book.Rating != nil {
			fmt.Printf("   Rating: %d\n", *book.Rating)
		}
		fmt.Println()
	}
}

// PrintCombined prints the cross-shelf totals and a short preview
func PrintCombined(all, read, currentlyReading []models.Book) {
	fmt.Printf("\n%s\n", rule)
	fmt.Println("COMBINED SUMMARY")
	fmt.Println(rule)
	fmt.Printf("Total books: %d (%d read, %d currently reading)\n",
		len(all), len(read), len(currentlyReading))

	preview := all
	if len(preview) > 5 {
		preview = preview[:5]
	}

	fmt.Println("\nFirst 5 books preview:")
	fmt.Println(strings.Repeat("-", 50))
	for i, book := range preview {
		fmt.Printf("%d. %s\n", i+1, book.String())
		if book.PublishDate != nil {
			fmt.Printf("   Published: %s\n", *book.PublishDate)
		}
		if book.Rating != nil {
			fmt.Printf("   Rating: %d\n", *book.Rating)
		}
		fmt.Println()
	}

	if len(all) > 5 {
		fmt.Printf("... and %d more books\n", len(all)-5)
	}
}

func orUnknown(s *string) string {
	if s == nil {
		return "Unknown"
	}
	return *s
}
