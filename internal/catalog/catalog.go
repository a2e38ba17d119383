package catalog

import (
	"sort"
)

// Catalog maps normalized entry names to their occurrences in document
// order. It is append-only while parsing and read-only afterwards; an
// occurrence is never merged into or overwritten by another one.
type Catalog struct {
	entries map[string][]Entry
	order   []string // normalized names in first-seen order
	total   int
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		entries: make(map[string][]Entry),
	}
}

// Append adds one occurrence under its normalized name.
func (c *Catalog) Append(e Entry) {
	if _, seen := c.entries[e.Name]; !seen {
		c.order = append(c.order, e.Name)
	}
	c.entries[e.Name] = append(c.entries[e.Name], e)
	c.total++
}

// Occurrences returns all occurrences recorded under the normalized name.
// Не модифицируйте возвращаемый срез.
func (c *Catalog) Occurrences(name string) []Entry {
	return c.entries[name]
}

// Names returns normalized names in first-seen document order.
func (c *Catalog) Names() []string {
	return c.order
}

// SortedNames returns normalized names in lexicographic order, for
// deterministic report grouping independent of document order.
func (c *Catalog) SortedNames() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	sort.Strings(out)
	return out
}

// Len returns the number of distinct names.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Total returns the number of occurrences across all names.
func (c *Catalog) Total() int {
	return c.total
}

// Duplicates returns the normalized names with more than one occurrence,
// in lexicographic order.
func (c *Catalog) Duplicates() []string {
	out := make([]string, 0)
	for _, name := range c.order {
		if len(c.entries[name]) > 1 {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
