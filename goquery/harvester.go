// Package goquery provides a pagemd.Harvester built on PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemd"
)

// Ensure Harvester implements pagemd.Harvester at compile time.
var _ pagemd.Harvester = (*Harvester)(nil)

// Harvester collects page metadata from meta tags and the document title.
type Harvester struct{}

// NewHarvester creates a new Harvester.
func NewHarvester() *Harvester {
	return &Harvester{}
}

// metaRule classifies a meta tag by substring match on its key candidate
// and names the destination key its content is stored under. Rules are
// evaluated top to bottom; the first match wins, so the precedence
// description > author > keywords > og:* is fixed here rather than by map
// ordering.
type metaRule struct {
	substr string
	dest   func(key string) string
}

var metaRules = []metaRule{
	{substr: "description", dest: func(string) string { return "description" }},
	{substr: "author", dest: func(string) string { return "author" }},
	{substr: "keywords", dest: func(string) string { return "keywords" }},
	// Open Graph fields keep their namespaced key verbatim.
	{substr: "og:", dest: func(key string) string { return key }},
}

// Harvest reads the document title and every meta tag in document order.
// The key candidate is the tag's name attribute, or its property attribute
// when name is absent; tags missing a key or content are skipped, as are
// tags matching no classification rule. Duplicate destination keys are
// last-write-wins.
func (h *Harvester) Harvest(rawHTML string) (*pagemd.Metadata, error) {
	if rawHTML == "" {
		return nil, pagemd.Errorf(pagemd.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, err
	}

	md := &pagemd.Metadata{}

	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		md.Set("title", title)
	}

	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		key := sel.AttrOr("name", "")
		if key == "" {
			key = sel.AttrOr("property", "")
		}
		content := sel.AttrOr("content", "")
		if key == "" || content == "" {
			return
		}
		for _, rule := range metaRules {
			if strings.Contains(key, rule.substr) {
				md.Set(rule.dest(key), content)
				return
			}
		}
	})

	return md, nil
}
