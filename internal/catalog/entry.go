package catalog

import (
	"strings"

	"golang.org/x/text/cases"

	"catlint/internal/source"
)

// Entry is one documented exception/error type extracted from a catalog
// document: its name, free-text description and prevention tip.
type Entry struct {
	// Name is the normalized form used as the grouping key.
	Name string
	// RawName keeps the document's spelling for output.
	RawName string
	// Description is the prose between the heading and the tip block.
	// Empty is legal for the parser and a finding for the checker.
	Description string
	// Tip is the prevention tip block. Same emptiness contract.
	Tip string
	// Heading spans the heading line the entry was extracted from.
	Heading source.Span
	// Section covers the whole section including the body.
	Section source.Span
	// Ordinal is the 1-based position of the section in document order.
	Ordinal int
}

// NormalizeName trims the raw heading text and applies Unicode case folding
// so that occurrences differing only in case land in one group.
// Caser не потокобезопасен, поэтому создаём его на каждый вызов.
func NormalizeName(raw string) string {
	return cases.Fold().String(strings.TrimSpace(raw))
}
