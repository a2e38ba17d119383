package catalog

// Builder folds parsed entries into a Catalog. It exists mostly to keep
// ordinal assignment in one place: entries arrive in document order and the
// builder numbers them globally, no matter how the parser batches them.
type Builder struct {
	cat  *Catalog
	next int
}

// NewBuilder creates a builder over a fresh catalog.
func NewBuilder() *Builder {
	return &Builder{cat: New(), next: 1}
}

// Add normalizes the entry name, assigns the next ordinal and appends the
// occurrence. Entries with an empty normalized name are dropped; the parser
// reports those as warnings before they ever reach the builder.
func (b *Builder) Add(e Entry) {
	if e.Name == "" {
		e.Name = NormalizeName(e.RawName)
	}
	if e.Name == "" {
		return
	}
	e.Ordinal = b.next
	b.next++
	b.cat.Append(e)
}

// Catalog returns the built catalog. The builder must not be used afterwards.
func (b *Builder) Catalog() *Catalog {
	return b.cat
}
