package fetcher

import "context"

// Fetcher defines the interface for retrieving rendered provider markup.
// Implementations fail with an error on any transport fault, timeout, or
// non-2xx status; callers treat every failure as transient.
type Fetcher interface {
	// FetchHTML downloads the page at url and returns its raw markup.
	FetchHTML(ctx context.Context, url string) (string, error)
}
