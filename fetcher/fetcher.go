package fetcher

import "fmt"

// Fetcher interface defines the contract for page fetching implementations
type Fetcher interface {
	// Fetch retrieves the raw HTML of a single page
	Fetch(url string) ([]byte, error)

	// Close releases any resources held by the fetcher
	Close() error
}

// FetchError wraps a transport failure or non-2xx response for one URL.
// Callers treat it as "stop paginating this shelf", not as a fatal error.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
