package pagemd

import "strings"

// Field is a single metadata entry.
type Field struct {
	Key   string
	Value string
}

// Metadata is an ordered mapping of metadata keys to values. Entries keep
// the position of their first insertion; setting an existing key replaces
// its value in place, so duplicate sources are last-write-wins without
// reordering. Entries with an empty key or empty value are never stored.
//
// The zero value is an empty mapping ready for use.
type Metadata struct {
	fields []Field
}

// Set stores value under key, replacing any existing value for key.
// Empty keys and empty values are ignored.
func (m *Metadata) Set(key, value string) {
	if key == "" || value == "" {
		return
	}
	for i := range m.fields {
		if m.fields[i].Key == key {
			m.fields[i].Value = value
			return
		}
	}
	m.fields = append(m.fields, Field{Key: key, Value: value})
}

// SetDefault stores value under key only if the key is not already present.
func (m *Metadata) SetDefault(key, value string) {
	if _, ok := m.Get(key); !ok {
		m.Set(key, value)
	}
}

// Get returns the value stored under key.
func (m *Metadata) Get(key string) (string, bool) {
	for _, f := range m.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Len returns the number of entries.
func (m *Metadata) Len() int {
	return len(m.fields)
}

// Fields returns the entries in insertion order.
func (m *Metadata) Fields() []Field {
	return m.fields
}

// FrontMatter renders the metadata as a front-matter block: a `---`
// delimited section with one `key: value` line per entry, in insertion
// order. Returns the empty string when there are no entries.
func (m *Metadata) FrontMatter() string {
	if len(m.fields) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("---\n")
	for _, f := range m.fields {
		b.WriteString(f.Key)
		b.WriteString(": ")
		b.WriteString(f.Value)
		b.WriteString("\n")
	}
	b.WriteString("---")
	return b.String()
}

// Harvester collects metadata from an HTML document.
type Harvester interface {
	// Harvest reads document metadata — the document title, description,
	// author, keywords and Open Graph fields — in document order.
	Harvest(html string) (*Metadata, error)
}
