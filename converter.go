package pagemd

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown. It is a pure
	// function of its input: converting the same fragment twice yields
	// identical output.
	Convert(html string) (string, error)
}
