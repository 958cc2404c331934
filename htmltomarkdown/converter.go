// Package htmltomarkdown provides a pagemd.Converter built on
// JohannesKaufmann/html-to-markdown.
package htmltomarkdown

import (
	"bytes"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/pagemd"
	"golang.org/x/net/html"
)

// passthroughTags are rendered verbatim as raw HTML: they have no safe
// markdown equivalent and must not be stripped.
var passthroughTags = []string{"iframe", "video", "audio"}

// strikethroughTags are rendered as ~~text~~, which the commonmark plugin
// does not cover by default.
var strikethroughTags = []string{"del", "s", "strike"}

// Ensure Converter implements pagemd.Converter at compile time.
var _ pagemd.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown. Output
// uses ATX headings, fenced code blocks, "-" as the unordered list marker
// and "*" as the emphasis delimiter.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			// ATX headings and fenced code blocks are the plugin
			// defaults; the delimiters are pinned explicitly.
			commonmark.NewCommonmarkPlugin(
				commonmark.WithBulletListMarker("-"),
				commonmark.WithEmDelimiter("*"),
				commonmark.WithStrongDelimiter("**"),
			),
			table.NewTablePlugin(),
		),
	)

	for _, tag := range strikethroughTags {
		conv.Register.RendererFor(tag, converter.TagTypeInline, renderStrikethrough, converter.PriorityStandard)
	}
	for _, tag := range passthroughTags {
		conv.Register.RendererFor(tag, converter.TagTypeBlock, renderRawHTML, converter.PriorityStandard)
	}

	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", pagemd.Errorf(pagemd.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}

// renderStrikethrough renders del, s and strike elements as ~~text~~.
func renderStrikethrough(ctx converter.Context, w converter.Writer, node *html.Node) converter.RenderStatus {
	_, _ = w.WriteString("~~")
	ctx.RenderChildNodes(ctx, w, node)
	_, _ = w.WriteString("~~")
	return converter.RenderSuccess
}

// renderRawHTML writes the element back out verbatim.
func renderRawHTML(ctx converter.Context, w converter.Writer, node *html.Node) converter.RenderStatus {
	var buf bytes.Buffer
	if err := html.Render(&buf, node); err != nil {
		return converter.RenderTryNext
	}
	_, _ = w.WriteString("\n\n")
	_, _ = w.WriteString(buf.String())
	_, _ = w.WriteString("\n\n")
	return converter.RenderSuccess
}
