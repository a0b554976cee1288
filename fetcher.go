package bookmeta

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch issues a GET request and returns the response body decoded
	// as UTF-8. Any network, status or decoding failure is an error.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
