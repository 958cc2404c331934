package pagemd

import "strings"

// FormatReport renders the combined report for a batch fetch: a top-level
// heading, then per URL a subheading followed by either its markdown text
// or an error line, separated by horizontal rules. Items appear in the
// order given.
func FormatReport(items []BatchItem) string {
	var b strings.Builder
	b.WriteString("# Fetch Results\n")
	for _, item := range items {
		b.WriteString("\n## ")
		b.WriteString(item.URL)
		b.WriteString("\n\n")
		if item.Err != nil {
			b.WriteString("**Error:** ")
			b.WriteString(ErrorMessage(item.Err))
			b.WriteString("\n")
		} else {
			b.WriteString(strings.TrimRight(item.Markdown, "\n"))
			b.WriteString("\n")
		}
		b.WriteString("\n---\n")
	}
	return b.String()
}
