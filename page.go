package pagemd

import (
	"context"
	"net/url"
	"time"
)

// DefaultTimeout is the per-URL fetch timeout used when a request does not
// specify one.
const DefaultTimeout = 30 * time.Second

// FetchRequest describes a single page fetch. It is constructed once per
// invocation and not modified afterwards.
type FetchRequest struct {
	// URL of the page to fetch. Must be a valid http or https URL.
	URL string

	// IncludeMetadata prepends harvested page metadata as front matter.
	IncludeMetadata bool

	// Simplify extracts the main readable content before conversion.
	// When extraction fails the full document is converted instead.
	Simplify bool

	// Timeout bounds the whole fetch. Must be positive.
	Timeout time.Duration
}

// Validate returns an error if the request contains invalid fields.
// Validation happens before any network access is attempted.
func (r *FetchRequest) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "URL required")
	}
	u, err := url.Parse(r.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Errorf(EINVALID, "invalid URL: %s", r.URL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Errorf(EINVALID, "unsupported URL scheme: %s", u.Scheme)
	}
	if r.Timeout <= 0 {
		return Errorf(EINVALID, "timeout must be positive")
	}
	return nil
}

// FetchOptions carries the shared per-URL settings of a batch fetch.
type FetchOptions struct {
	IncludeMetadata bool
	Simplify        bool
	Timeout         time.Duration
}

// DefaultFetchOptions returns the option defaults: simplify enabled,
// metadata disabled, DefaultTimeout.
func DefaultFetchOptions() FetchOptions {
	return FetchOptions{Simplify: true, Timeout: DefaultTimeout}
}

// Request builds the FetchRequest for a single URL of a batch.
func (o FetchOptions) Request(url string) FetchRequest {
	return FetchRequest{
		URL:             url,
		IncludeMetadata: o.IncludeMetadata,
		Simplify:        o.Simplify,
		Timeout:         o.Timeout,
	}
}

// BatchItem is the per-URL outcome of a batch fetch. Exactly one of
// Markdown and Err is meaningful.
type BatchItem struct {
	URL      string
	Markdown string
	Err      error
}

// PageService fetches pages and converts them to markdown.
type PageService interface {
	// FetchPage runs the full pipeline for a single URL: fetch, optional
	// content extraction, markdown conversion, optional metadata front
	// matter. Every failure past validation is returned as an application
	// error whose message is safe to show to the caller.
	FetchPage(ctx context.Context, req FetchRequest) (string, error)

	// FetchPages fetches the given URLs strictly sequentially, in input
	// order. It returns exactly one item per input URL; a per-URL failure
	// never aborts the remaining URLs.
	FetchPages(ctx context.Context, urls []string, opts FetchOptions) []BatchItem
}
