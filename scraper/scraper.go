package scraper

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"goodreads-scraper/config"
	"goodreads-scraper/fetcher"
	"goodreads-scraper/models"
	"goodreads-scraper/parser"
)

// Scraper walks a user's public shelves page by page and collects book
// records. All requests go through a single Fetcher, serially.
type Scraper struct {
	fetcher fetcher.Fetcher
	parser  *parser.Parser
	cfg     *config.Config

	// sleep is swapped out in tests
	sleep func(time.Duration)
}

// New creates a Scraper backed by the given fetcher
func New(f fetcher.Fetcher, cfg *config.Config) (*Scraper, error) {
	p, err := parser.NewParser(cfg.Scraper.BaseURL)
	if err != nil {
		return nil, err
	}
	return &Scraper{
		fetcher: f,
		parser:  p,
		cfg:     cfg,
		sleep:   time.Sleep,
	}, nil
}

// ProfileURL returns the profile page URL for a username
func (s *Scraper) ProfileURL(username string) string {
	return fmt.Sprintf("%s/user/show/%s", s.cfg.Scraper.BaseURL, username)
}

// ShelfURL returns the shelf listing URL for a username and 1-based page
func (s *Scraper) ShelfURL(username string, shelf models.Shelf, page int) string {
	return fmt.Sprintf("%s/review/list/%s?shelf=%s&page=%d", s.cfg.Scraper.BaseURL, username, shelf, page)
}

// ScrapeProfile fetches basic public profile information. Failures degrade
// to an empty profile; they never abort the run.
func (s *Scraper) ScrapeProfile(username string) models.Profile {
	var profile models.Profile

	body, err := s.fetcher.Fetch(s.ProfileURL(username))
	if err != nil {
		log.Printf("Error scraping profile: %v\n", err)
		return profile
	}

	doc, err := s.parser.Parse(body)
	if err != nil {
		log.Printf("Error parsing profile page: %v\n", err)
		return profile
	}

	profile.DisplayName = strings.TrimSpace(doc.Find("h1.userProfileName").First().Text())
	profile.Location = strings.TrimSpace(doc.Find("span.userLocation").First().Text())

	doc.Find("span").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if strings.HasPrefix(text, "Member since") {
			profile.MemberSince = strings.TrimSpace(strings.TrimPrefix(text, "Member since"))
			return false
		}
		return true
	})

	return profile
}

// maxPages returns the page cap for a shelf
func (s *Scraper) maxPages(shelf models.Shelf) int {
	if shelf == models.ShelfCurrentlyReading {
		return s.cfg.Scraper.MaxPagesCurrentlyRead
	}
	return s.cfg.Scraper.MaxPagesRead
}

// debugDumpName returns the raw-HTML dump filename for a shelf's first page
func debugDumpName(username string, shelf models.Shelf) string {
	if shelf == models.ShelfCurrentlyReading {
		return fmt.Sprintf("debug_currently_reading_%s.html", username)
	}
	return fmt.Sprintf("debug_page_%s.html", username)
}

// ScrapeShelf pages through one shelf until no entries are located, no
// records are extracted, the next-page link disappears, the page cap is
// reached, or a fetch fails. Fetch failures keep whatever was collected so
// far; they never propagate.
func (s *Scraper) ScrapeShelf(username string, shelf models.Shelf) []models.Book {
	var books []models.Book
	maxPages := s.maxPages(shelf)

	log.Printf("Scraping %s books for user: %s\n", shelf, username)

	for page := 1; page <= maxPages; page++ {
		log.Printf("Scraping %s page %d...\n", shelf, page)

		body, err := s.fetcher.Fetch(s.ShelfURL(username, shelf, page))
		if err != nil {
			log.Printf("Error scraping page %d: %v\n", page, err)
			break
		}

		// Keep the first page around for selector debugging
		if page == 1 {
			dump := debugDumpName(username, shelf)
			if err := os.WriteFile(dump, body, 0644); err != nil {
				log.Printf("Warning: failed to write debug HTML %s: %v\n", dump, err)
			} else {
				log.Printf("Saved debug HTML to %s\n", dump)
			}
		}

		doc, err := s.parser.Parse(body)
		if err != nil {
			log.Printf("Error parsing page %d: %v\n", page, err)
			break
		}

		entries := s.parser.LocateEntries(doc)
		log.Printf("Found %d potential book entries\n", len(entries))
		if len(entries) == 0 {
			log.Printf("No book entries found on page %d\n", page)
			break
		}

		var pageBooks []models.Book
		for _, entry := range entries {
			if book := s.parser.ExtractBook(entry); book != nil {
				book.Shelf = shelf
				pageBooks = append(pageBooks, *book)
			}
		}

		// Zero extracted records ends the shelf even if a next-page link
		// is still present
		if len(pageBooks) == 0 {
			log.Printf("No books extracted from page %d\n", page)
			break
		}

		books = append(books, pageBooks...)
		log.Printf("Found %d books on page %d\n", len(pageBooks), page)

		if !s.parser.HasNextPage(doc) {
			log.Println("No next page found")
			break
		}

		// Be respectful with requests
		if page < maxPages {
			s.sleep(s.cfg.Delay())
		}
	}

	log.Printf("Total %s books scraped: %d\n", shelf, len(books))
	return books
}
