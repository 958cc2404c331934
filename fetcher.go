package pagemd

import "context"

// Fetcher retrieves HTML from URLs.
// Implementations do not execute JavaScript; pages are fetched as served.
type Fetcher interface {
	// Fetch issues a GET request for the URL and returns the response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
