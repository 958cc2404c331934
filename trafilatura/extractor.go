// Package trafilatura provides a pagemd.Extractor built on
// markusmobius/go-trafilatura. It is an alternative engine to the
// readability package, selectable at wiring time.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/fwojciec/pagemd"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pagemd.Extractor at compile time.
var _ pagemd.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract runs trafilatura extraction on raw HTML. A nil Article with a
// nil error means no article could be identified; callers fall back to
// converting the full document.
func (e *Extractor) Extract(rawHTML, sourceURL string) (*pagemd.Article, error) {
	if rawHTML == "" {
		return nil, pagemd.Errorf(pagemd.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if u, err := url.Parse(sourceURL); err == nil {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		// Trafilatura reports "no content found" as an error; the
		// contract is a nil Article instead.
		return nil, nil
	}

	if result.ContentNode == nil || strings.TrimSpace(result.Metadata.Title) == "" {
		return nil, nil
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(result.ContentText) == "" {
		return nil, nil
	}

	return &pagemd.Article{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
		Byline:      result.Metadata.Author,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
