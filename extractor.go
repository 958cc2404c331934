package pagemd

// Article holds the primary readable content of an HTML page.
type Article struct {
	// Title is the article title identified by the extraction heuristic.
	Title string

	// ContentHTML is the article body as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string

	// Byline is the article author, if one was identified.
	Byline string
}

// Extractor isolates the main article content of an HTML page, removing
// boilerplate.
type Extractor interface {
	// Extract attempts readability-style extraction on raw HTML.
	// The source URL is used to resolve relative references.
	//
	// A nil Article with a nil error means no article could be identified
	// with sufficient confidence. Callers must treat a nil Article — and
	// any error — as a signal to fall back to the full document, never as
	// a fatal failure.
	Extract(html, sourceURL string) (*Article, error)
}
