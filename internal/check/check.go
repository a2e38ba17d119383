// Package check implements the consistency rules over a built catalog:
// duplicate groups, missing fields and malformed names. The pass is pure —
// identical catalogs always produce the identical finding sequence.
package check

import (
	"fmt"
	"regexp"

	"catlint/internal/catalog"
	"catlint/internal/diag"
)

// DefaultNamePattern accepts identifier-like entry names: a leading letter
// or underscore, then letters, digits, underscores or dots (dotted exception
// names such as android.os.DeadObjectException are legal).
const DefaultNamePattern = `^[A-Za-z_][A-Za-z0-9_.]*$`

// Config tunes the checker. The zero value enables every rule with the
// default name pattern.
type Config struct {
	// NamePattern overrides DefaultNamePattern when non-nil.
	NamePattern *regexp.Regexp
	// Ignore lists normalized names exempt from every rule.
	Ignore map[string]bool
	// SilentAgreeingDuplicates drops the info-level finding for duplicate
	// groups whose texts all agree.
	SilentAgreeingDuplicates bool
}

func (c Config) pattern() *regexp.Regexp {
	if c.NamePattern != nil {
		return c.NamePattern
	}
	return defaultNameRe
}

var defaultNameRe = regexp.MustCompile(DefaultNamePattern)

// Summary groups the findings by report category, carrying the affected
// entry names and occurrence ordinals for downstream tooling.
type Summary struct {
	// Duplicates has one group per name with more than one occurrence.
	Duplicates []DuplicateGroup
	// MissingField lists entries lacking a description or tip.
	MissingField []EntryRef
	// MalformedName lists entries whose raw name fails the pattern.
	MalformedName []EntryRef
	// Ignored counts occurrences skipped via the ignore list.
	Ignored int
}

// DuplicateGroup describes every occurrence of one repeated name.
type DuplicateGroup struct {
	Name       string // normalized
	RawName    string // spelling of the first occurrence
	Ordinals   []int
	Consistent bool // true when all descriptions and tips agree
}

// EntryRef points at one offending occurrence.
type EntryRef struct {
	Name    string // normalized
	RawName string
	Ordinal int
	Field   string // "description" or "tip"; empty for malformed-name
}

// Run walks the catalog in sorted-name order and emits findings to the
// reporter, returning the category summary.
func Run(cat *catalog.Catalog, cfg Config, reporter diag.Reporter) Summary {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	var sum Summary

	// Пустой каталог отмечает driver (CatEmptyCatalog): у него есть FileID.
	namePat := cfg.pattern()
	for _, name := range cat.SortedNames() {
		occ := cat.Occurrences(name)
		first := occ[0]

		if cfg.Ignore[name] {
			sum.Ignored += len(occ)
			continue
		}

		if !namePat.MatchString(first.RawName) {
			diag.ReportError(reporter, diag.CatMalformedName, first.Heading,
				fmt.Sprintf("entry name %q is not identifier-like", first.RawName)).Emit()
			sum.MalformedName = append(sum.MalformedName, EntryRef{
				Name: name, RawName: first.RawName, Ordinal: first.Ordinal,
			})
		}

		for i := range occ {
			checkFields(&sum, occ[i], reporter)
		}

		if len(occ) > 1 {
			checkDuplicates(&sum, name, occ, cfg, reporter)
		}
	}
	return sum
}

// checkFields emits missing-field findings for one occurrence.
func checkFields(sum *Summary, e catalog.Entry, reporter diag.Reporter) {
	if e.Description == "" {
		diag.ReportError(reporter, diag.CatMissingDescription, e.Heading,
			fmt.Sprintf("entry %q has no description", e.RawName)).Emit()
		sum.MissingField = append(sum.MissingField, EntryRef{
			Name: e.Name, RawName: e.RawName, Ordinal: e.Ordinal, Field: "description",
		})
	}
	if e.Tip == "" {
		diag.ReportError(reporter, diag.CatMissingTip, e.Heading,
			fmt.Sprintf("entry %q has no prevention tip", e.RawName)).Emit()
		sum.MissingField = append(sum.MissingField, EntryRef{
			Name: e.Name, RawName: e.RawName, Ordinal: e.Ordinal, Field: "tip",
		})
	}
}

// checkDuplicates flags one finding per repeated name: an error when the
// occurrences disagree textually, otherwise an info note (the document is
// expected to repeat entries, so agreement is not an error).
func checkDuplicates(sum *Summary, name string, occ []catalog.Entry, cfg Config, reporter diag.Reporter) {
	first := occ[0]
	group := DuplicateGroup{
		Name:       name,
		RawName:    first.RawName,
		Consistent: true,
	}
	for _, e := range occ {
		group.Ordinals = append(group.Ordinals, e.Ordinal)
	}

	var divergent []catalog.Entry
	for _, e := range occ[1:] {
		if e.Description != first.Description || e.Tip != first.Tip {
			divergent = append(divergent, e)
		}
	}

	if len(divergent) > 0 {
		group.Consistent = false
		b := diag.ReportError(reporter, diag.CatDuplicateMismatch, first.Heading,
			fmt.Sprintf("entry %q is documented %d times with diverging text", first.RawName, len(occ)))
		for _, e := range divergent {
			b.WithNote(e.Heading, fmt.Sprintf("occurrence %d differs here", e.Ordinal))
		}
		b.Emit()
	} else if !cfg.SilentAgreeingDuplicates {
		b := diag.ReportInfo(reporter, diag.CatDuplicateAgree, first.Heading,
			fmt.Sprintf("entry %q is documented %d times (texts agree)", first.RawName, len(occ)))
		for _, e := range occ[1:] {
			b.WithNote(e.Heading, fmt.Sprintf("also documented as occurrence %d", e.Ordinal))
		}
		b.Emit()
	}

	sum.Duplicates = append(sum.Duplicates, group)
}
