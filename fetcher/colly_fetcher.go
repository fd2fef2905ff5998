package fetcher

import (
	"fmt"

	"github.com/gocolly/colly/v2"
)

// CollyFetcher implements the Fetcher interface using colly
type CollyFetcher struct {
	collector *colly.Collector
	lastBody  []byte
}

// NewCollyFetcher creates a new CollyFetcher with a fixed identifying
// user agent. Requests are serialized; pacing between pages is handled by
// the pagination loop so both fetcher implementations behave the same.
func NewCollyFetcher(userAgent string) *CollyFetcher {
	c := colly.NewCollector(
		colly.UserAgent(userAgent),
	)
	c.AllowURLRevisit = true

	c.Limit(&colly.LimitRule{
		DomainGlob:  "*goodreads.*",
		Parallelism: 1,
	})

	cf := &CollyFetcher{collector: c}

	c.OnResponse(func(r *colly.Response) {
		cf.lastBody = r.Body
	})

	return cf
}

// Fetch implements the Fetcher interface. Transport failures and non-2xx
// statuses both surface as a *FetchError.
func (cf *CollyFetcher) Fetch(url string) ([]byte, error) {
	cf.lastBody = nil

	if err := cf.collector.Visit(url); err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	if cf.lastBody == nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("no response body received")}
	}

	return cf.lastBody, nil
}

// Close implements the Fetcher interface. The collector holds no resources
// that outlive its requests.
func (cf *CollyFetcher) Close() error {
	return nil
}
