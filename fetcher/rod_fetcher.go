package fetcher

import (
	"fmt"
	"log"
	"time"

	"github.com/go-rod/rod"
)

// RodFetcher implements the Fetcher interface using a headless browser.
// The shelf pages are server-rendered today, so the plain HTTP fetcher is the
// default; this one exists for the day Goodreads moves to client-side
// rendering, mirroring the scraper's -browser flag.
type RodFetcher struct {
	browser *rod.Browser
}

// NewRodFetcher launches a headless browser
func NewRodFetcher() (*RodFetcher, error) {
	var browser *rod.Browser
	var launchErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				launchErr = fmt.Errorf("panic while launching browser: %v", r)
			}
		}()
		browser = rod.New().MustConnect()
	}()
	if launchErr != nil {
		return nil, launchErr
	}

	return &RodFetcher{browser: browser}, nil
}

// Fetch implements the Fetcher interface
func (rf *RodFetcher) Fetch(url string) ([]byte, error) {
	var page *rod.Page
	var pageErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				pageErr = fmt.Errorf("panic while creating page: %v", r)
			}
		}()
		page = rf.browser.MustPage()
	}()
	if pageErr != nil {
		return nil, &FetchError{URL: url, Err: pageErr}
	}
	defer page.Close()

	if err := page.Navigate(url); err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("failed to navigate: %w", err)}
	}

	page.WaitLoad()

	if err := page.Timeout(10 * time.Second).WaitStable(500 * time.Millisecond); err != nil {
		log.Printf("Warning: page did not stabilize within timeout, continuing anyway: %v\n", err)
	}

	html, err := page.HTML()
	if err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("failed to get HTML: %w", err)}
	}

	return []byte(html), nil
}

// Close shuts down the browser
func (rf *RodFetcher) Close() error {
	if rf.browser == nil {
		return nil
	}
	return rf.browser.Close()
}
