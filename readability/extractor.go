// Package readability provides a pagemd.Extractor built on
// go-shiori/go-readability.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/pagemd"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pagemd.Extractor at compile time.
var _ pagemd.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract runs the readability heuristic on raw HTML. It returns a nil
// Article — not an error — when the heuristic cannot identify a title and
// content pair, or when the library faults internally. Callers treat a nil
// Article as a fall-back-to-full-document signal.
func (e *Extractor) Extract(rawHTML, sourceURL string) (*pagemd.Article, error) {
	if rawHTML == "" {
		return nil, pagemd.Errorf(pagemd.EINVALID, "empty HTML input")
	}

	pageURL, err := url.Parse(sourceURL)
	if err != nil {
		pageURL = nil
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), pageURL)
	if err != nil {
		return nil, nil
	}

	if strings.TrimSpace(article.Title) == "" || strings.TrimSpace(article.TextContent) == "" {
		return nil, nil
	}

	return &pagemd.Article{
		Title:       article.Title,
		ContentHTML: article.Content,
		Byline:      article.Byline,
	}, nil
}
