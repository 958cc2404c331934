// Package http provides an HTTP-based implementation of pagemd.Fetcher.
// Pages are fetched with a plain GET; no JavaScript is executed.
package http

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/pagemd"
)

// DefaultFetchTimeout is the default timeout for HTTP requests. Kept
// consistent with pagemd.DefaultTimeout (30s).
const DefaultFetchTimeout = 30 * time.Second

// maxRedirects caps redirect following per request.
const maxRedirects = 5

// DefaultUserAgent identifies the fetcher to origin servers.
const DefaultUserAgent = "Mozilla/5.0 (compatible; pagemd/1.0; +https://github.com/fwojciec/pagemd)"

// DefaultAcceptLanguage is sent when no language preference is configured.
const DefaultAcceptLanguage = "en-US,en;q=0.9"

const acceptHeader = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"

// Ensure Fetcher implements pagemd.Fetcher at compile time.
var _ pagemd.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP GET requests.
type Fetcher struct {
	client         *http.Client
	timeout        time.Duration
	userAgent      string
	acceptLanguage string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithAcceptLanguage sets the Accept-Language header sent with each request.
func WithAcceptLanguage(al string) Option {
	return func(f *Fetcher) {
		f.acceptLanguage = al
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:        DefaultFetchTimeout,
		userAgent:      DefaultUserAgent,
		acceptLanguage: DefaultAcceptLanguage,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
//
// Transport failures are returned as EUNAVAILABLE (or ETIMEOUT) errors
// carrying the underlying transport message. Any response status >= 400 is
// returned as an error with the message "HTTP <status>: <statusText>".
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", pagemd.Errorf(pagemd.EINVALID, "invalid URL: %s", url)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Accept-Language", f.acceptLanguage)
	// Setting Accept-Encoding manually disables net/http's transparent
	// decompression, so gzip bodies are decoded below.
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", pagemd.Errorf(pagemd.ETIMEOUT, "request for %s timed out", url)
		}
		return "", pagemd.Errorf(pagemd.EUNAVAILABLE, "%v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", pagemd.Errorf(pagemd.EUNAVAILABLE, "HTTP %d: %s", resp.StatusCode, statusText(resp))
	}

	body := io.Reader(resp.Body)
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return "", pagemd.Errorf(pagemd.EUNAVAILABLE, "No response received from server")
		}
		defer gz.Close()
		body = gz
	}

	b, err := io.ReadAll(body)
	if err != nil {
		return "", pagemd.Errorf(pagemd.EUNAVAILABLE, "No response received from server")
	}

	return string(b), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// statusText returns the reason phrase for a response, falling back to the
// raw status line for non-standard codes.
func statusText(resp *http.Response) string {
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return strings.TrimSpace(strings.TrimPrefix(resp.Status, fmt.Sprintf("%d", resp.StatusCode)))
}
