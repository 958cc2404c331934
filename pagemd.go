// Package pagemd fetches web pages and converts them to markdown. It can
// simplify a page to its main readable content before conversion and
// prepend harvested page metadata as a front-matter block. The two
// operations — fetch one URL, fetch many URLs — are exposed both as a CLI
// and as tools over the Model Context Protocol.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, readability/, goquery/).
package pagemd
