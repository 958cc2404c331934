// Package fetch orchestrates the page pipeline: fetch, optional content
// extraction, markdown conversion and optional metadata assembly.
package fetch

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/pagemd"
)

// Ensure Service implements pagemd.PageService at compile time.
var _ pagemd.PageService = (*Service)(nil)

// Service implements pagemd.PageService by composing the injected
// fetcher, extractor, converter and harvester. Each invocation works on
// fresh per-document state; the service itself holds none.
type Service struct {
	fetcher   pagemd.Fetcher
	extractor pagemd.Extractor
	converter pagemd.Converter
	harvester pagemd.Harvester
	now       func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the clock used for the fetchedAt metadata field.
// Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a new Service with the given dependencies.
func NewService(
	fetcher pagemd.Fetcher,
	extractor pagemd.Extractor,
	converter pagemd.Converter,
	harvester pagemd.Harvester,
	opts ...Option,
) *Service {
	s := &Service{
		fetcher:   fetcher,
		extractor: extractor,
		converter: converter,
		harvester: harvester,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchPage runs the pipeline for a single URL.
//
// The request is validated before any network access. After validation
// every fault — transport, HTTP status, parsing, conversion — is returned
// as an application error whose ErrorMessage is the human-readable failure
// message; extraction failure is not a fault but a signal to convert the
// full document instead.
func (s *Service) FetchPage(ctx context.Context, req pagemd.FetchRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, req.Timeout)
	defer cancel()

	rawHTML, err := s.fetcher.Fetch(ctx, req.URL)
	if err != nil {
		return "", transportError(err)
	}
	fetchedAt := s.now().UTC()

	var meta pagemd.Metadata
	body := rawHTML
	if req.Simplify {
		article, err := s.extractor.Extract(rawHTML, req.URL)
		if err != nil {
			// Extraction faults trigger the full-document fallback;
			// the logging decorator records them.
			article = nil
		}
		if article != nil {
			body = article.ContentHTML
			if req.IncludeMetadata {
				meta.Set("title", article.Title)
				meta.Set("author", article.Byline)
			}
		}
	}

	markdown, err := s.converter.Convert(body)
	if err != nil {
		return "", pagemd.Errorf(pagemd.EINTERNAL, "failed to convert page content to markdown")
	}

	if !req.IncludeMetadata {
		return markdown, nil
	}

	// The harvester works on the full document: its structure is needed
	// whether or not extraction replaced the body above.
	harvested, err := s.harvester.Harvest(rawHTML)
	if err != nil {
		return "", pagemd.Errorf(pagemd.EINTERNAL, "failed to parse page metadata")
	}
	for _, f := range harvested.Fields() {
		if f.Key == "title" {
			// An article title seeded during extraction outranks the
			// document title.
			meta.SetDefault(f.Key, f.Value)
			continue
		}
		meta.Set(f.Key, f.Value)
	}
	meta.Set("url", req.URL)
	meta.Set("fetchedAt", fetchedAt.Format(time.RFC3339))

	return meta.FrontMatter() + "\n\n" + markdown, nil
}

// FetchPages fetches every URL strictly sequentially, in input order. The
// result always has exactly one item per input URL; a failed URL never
// aborts the remaining ones.
func (s *Service) FetchPages(ctx context.Context, urls []string, opts pagemd.FetchOptions) []pagemd.BatchItem {
	items := make([]pagemd.BatchItem, 0, len(urls))
	for _, u := range urls {
		markdown, err := s.FetchPage(ctx, opts.Request(u))
		items = append(items, pagemd.BatchItem{URL: u, Markdown: markdown, Err: err})
	}
	return items
}

// transportError preserves messages from fetchers that do not return
// application errors.
func transportError(err error) error {
	var e *pagemd.Error
	if errors.As(err, &e) {
		return err
	}
	return pagemd.Errorf(pagemd.EUNAVAILABLE, "%v", err)
}
