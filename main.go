package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"goodreads-scraper/config"
	"goodreads-scraper/db"
	"goodreads-scraper/export"
	"goodreads-scraper/fetcher"
	"goodreads-scraper/filter"
	"goodreads-scraper/models"
	"goodreads-scraper/report"
	"goodreads-scraper/scraper"
	"goodreads-scraper/sheets"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	useBrowser := flag.Bool("browser", false, "Fetch pages with a headless browser instead of plain HTTP")
	spreadsheetURL := flag.String("spreadsheet", "", "Google Sheets URL to export results to (optional)")
	credentialsPath := flag.String("credentials", "", "Path to Google service account credentials JSON file (or use GOOGLE_SHEETS_CREDENTIALS env var)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}
	username := flag.Arg(0)

	cfg := loadConfig(*configPath)

	f, err := newFetcher(*useBrowser, cfg)
	if err != nil {
		log.Fatalf("Failed to create fetcher: %v\n", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Warning: Failed to close fetcher: %v\n", err)
		}
	}()

	s, err := scraper.New(f, cfg)
	if err != nil {
		log.Fatalf("Failed to create scraper: %v\n", err)
	}

	fmt.Printf("Starting Goodreads scraper for user: %s\n", username)
	fmt.Println(strings.Repeat("-", 50))

	// Profile fetch failures degrade to an empty profile
	profile := s.ScrapeProfile(username)
	report.PrintProfile(profile)

	readBooks := s.ScrapeShelf(username, models.ShelfRead)
	currentlyReading := s.ScrapeShelf(username, models.ShelfCurrentlyReading)

	allBooks := append(append([]models.Book{}, readBooks...), currentlyReading...)
	if len(allBooks) == 0 {
		fmt.Println("No books found. Please check:")
		fmt.Println("1. The username is correct")
		fmt.Println("2. The profile is public")
		fmt.Println("3. The user has marked books as read or currently reading")
		fmt.Printf("\nDebug information has been saved to debug_page_%s.html\n", username)
		return
	}

	if len(readBooks) > 0 {
		report.PrintSummary("READ BOOKS SUMMARY", readBooks)
	}
	report.PrintCurrentlyReading(currentlyReading)

	filtered := filter.NewFilter(cfg).ApplyFilters(allBooks)
	if len(filtered) != len(allBooks) {
		fmt.Printf("\nFound %d books before filtering\n", len(allBooks))
		fmt.Printf("Found %d books after filtering\n", len(filtered))
	}

	// Export failures are warnings: the summaries above already went out
	filename := fmt.Sprintf("%s_goodreads_books.csv", username)
	if err := export.WriteCSV(filename, filtered); err != nil {
		log.Printf("Error saving to CSV: %v\n", err)
	}

	if *spreadsheetURL != "" {
		exportToSheets(*spreadsheetURL, *credentialsPath, username, filtered)
	}

	if cfg.Scraper.SQLitePath != "" {
		archiveRun(cfg.Scraper.SQLitePath, username, filtered)
	}

	report.PrintCombined(allBooks, readBooks, currentlyReading)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <goodreads_username>\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Example: %s johndoe\n\nFlags:\n", os.Args[0])
	flag.PrintDefaults()
}

// loadConfig loads configuration from file or returns defaults
func loadConfig(configPath string) *config.Config {
	if _, err := os.Stat(configPath); err != nil {
		log.Println("Config file not found. Using default configuration.")
		return config.GetDefaultConfig()
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Printf("Warning: Failed to load config file: %v. Using defaults.\n", err)
		return config.GetDefaultConfig()
	}
	return cfg
}

// newFetcher picks the fetcher implementation
func newFetcher(useBrowser bool, cfg *config.Config) (fetcher.Fetcher, error) {
	if useBrowser {
		return fetcher.NewRodFetcher()
	}
	return fetcher.NewCollyFetcher(cfg.Scraper.UserAgent), nil
}

// exportToSheets writes results into a run-named sheet of the spreadsheet
func exportToSheets(spreadsheetURL, credentialsPath, username string, books []models.Book) {
	spreadsheetID := sheets.ExtractSpreadsheetID(spreadsheetURL)
	if spreadsheetID == "" {
		log.Printf("Warning: Could not extract spreadsheet ID from URL: %s\n", spreadsheetURL)
		return
	}

	writer, err := sheets.NewWriter(spreadsheetID, credentialsPath)
	if err != nil {
		log.Printf("Warning: Failed to initialize Google Sheets writer: %v\n", err)
		return
	}

	sheetName := fmt.Sprintf("%s_%s", username, time.Now().Format("20060102_150405"))
	sourceInfo := fmt.Sprintf("goodreads.com/%s, scraped %s", username, time.Now().Format(time.RFC3339))
	if _, _, err := writer.CreateSheetAndWriteBooks(sheetName, books, sourceInfo); err != nil {
		log.Printf("Warning: Failed to write to Google Sheets: %v\n", err)
		return
	}
	fmt.Printf("\nSuccessfully wrote %d books to Google Sheets\n", len(books))
}

// archiveRun stores the run in the sqlite archive
func archiveRun(path, username string, books []models.Book) {
	database, err := db.NewDB(path)
	if err != nil {
		log.Printf("Warning: Failed to open archive database: %v\n", err)
		return
	}
	defer database.Close()

	runID, err := database.SaveRun(username, books)
	if err != nil {
		log.Printf("Warning: Failed to archive run: %v\n", err)
		return
	}
	log.Printf("Archived run %d (%d books) to %s\n", runID, len(books), path)
}
