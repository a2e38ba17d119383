package reportfmt

import (
	"catlint/internal/check"
	"catlint/internal/diag"
	"catlint/internal/source"
)

// Location представляет позицию находки в документе.
type Location struct {
	File      string `json:"file" msgpack:"file"`
	StartByte uint32 `json:"start_byte" msgpack:"start_byte"`
	EndByte   uint32 `json:"end_byte" msgpack:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty" msgpack:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty" msgpack:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty" msgpack:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty" msgpack:"end_col,omitempty"`
}

// NoteOut представляет дополнительную заметку находки.
type NoteOut struct {
	Message  string   `json:"message" msgpack:"message"`
	Location Location `json:"location" msgpack:"location"`
}

// FindingOut представляет одну находку в структурированном выводе.
type FindingOut struct {
	Severity string    `json:"severity" msgpack:"severity"`
	Code     string    `json:"code" msgpack:"code"`
	Category string    `json:"category" msgpack:"category"`
	Message  string    `json:"message" msgpack:"message"`
	Location Location  `json:"location" msgpack:"location"`
	Notes    []NoteOut `json:"notes,omitempty" msgpack:"notes,omitempty"`
}

// CategoryRef names one entry affected by a category, with the ordinals of
// the occurrences involved.
type CategoryRef struct {
	Name     string `json:"name" msgpack:"name"`
	RawName  string `json:"raw_name" msgpack:"raw_name"`
	Ordinals []int  `json:"ordinals" msgpack:"ordinals"`
}

// SummaryOut aggregates the run counters.
type SummaryOut struct {
	Findings      int `json:"findings" msgpack:"findings"`
	Errors        int `json:"errors" msgpack:"errors"`
	Warnings      int `json:"warnings" msgpack:"warnings"`
	Infos         int `json:"infos" msgpack:"infos"`
	ParseWarnings int `json:"parse_warnings" msgpack:"parse_warnings"`
	Occurrences   int `json:"occurrences" msgpack:"occurrences"`
	Names         int `json:"names" msgpack:"names"`
	Ignored       int `json:"ignored,omitempty" msgpack:"ignored,omitempty"`
}

// Output is the root structure of the serialized report. Schema is bumped
// whenever the layout changes so downstream consumers can invalidate safely.
type Output struct {
	Schema     uint16                   `json:"schema" msgpack:"schema"`
	Findings   []FindingOut             `json:"findings" msgpack:"findings"`
	Categories map[string][]CategoryRef `json:"categories" msgpack:"categories"`
	Summary    SummaryOut               `json:"summary" msgpack:"summary"`
}

// OutputSchemaVersion - increment when Output format changes.
const OutputSchemaVersion uint16 = 1

// makeLocation создаёт Location из Span.
func makeLocation(span source.Span, fs *source.FileSet, pathMode PathMode, includePositions bool) Location {
	f := fs.Get(span.File)

	var path string
	switch pathMode {
	case PathModeAbsolute:
		path = f.FormatPath("absolute", "")
	case PathModeRelative:
		path = f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		path = f.FormatPath("basename", "")
	case PathModeAuto:
		path = f.FormatPath("auto", "")
	default:
		path = f.Path
	}

	loc := Location{
		File:      path,
		StartByte: span.Start,
		EndByte:   span.End,
	}
	if includePositions {
		startPos, endPos := fs.Resolve(span)
		loc.StartLine = startPos.Line
		loc.StartCol = startPos.Col
		loc.EndLine = endPos.Line
		loc.EndCol = endPos.Col
	}
	return loc
}

// BuildOutput формирует структуру вывода без сериализации.
// Ожидается bag.Sort() заранее.
func BuildOutput(bag *diag.Bag, sum check.Summary, stats Stats, fs *source.FileSet, opts EncodeOpts) Output {
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	findings := make([]FindingOut, 0, maxItems)
	for i := 0; i < maxItems; i++ {
		d := items[i]
		out := FindingOut{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Category: d.Code.Category(),
			Message:  d.Message,
			Location: makeLocation(d.Primary, fs, opts.PathMode, opts.IncludePositions),
		}
		if opts.IncludeNotes {
			for _, note := range d.Notes {
				out.Notes = append(out.Notes, NoteOut{
					Message:  note.Msg,
					Location: makeLocation(note.Span, fs, opts.PathMode, opts.IncludePositions),
				})
			}
		}
		findings = append(findings, out)
	}

	return Output{
		Schema:     OutputSchemaVersion,
		Findings:   findings,
		Categories: buildCategories(sum),
		Summary: SummaryOut{
			Findings:      bag.Len(),
			Errors:        bag.CountBySeverity(diag.SevError),
			Warnings:      bag.CountBySeverity(diag.SevWarning),
			Infos:         bag.CountBySeverity(diag.SevInfo),
			ParseWarnings: stats.ParseWarnings,
			Occurrences:   stats.Occurrences,
			Names:         stats.Names,
			Ignored:       sum.Ignored,
		},
	}
}

// buildCategories groups the summary refs by report category. The duplicate
// and malformed-name groups are already per-name; missing-field refs are
// folded so each name appears once with every offending ordinal.
func buildCategories(sum check.Summary) map[string][]CategoryRef {
	out := map[string][]CategoryRef{
		"duplicate":      {},
		"missing-field":  {},
		"malformed-name": {},
	}

	for _, g := range sum.Duplicates {
		out["duplicate"] = append(out["duplicate"], CategoryRef{
			Name: g.Name, RawName: g.RawName, Ordinals: g.Ordinals,
		})
	}

	var missingOrder []string
	missing := make(map[string]*CategoryRef)
	for _, ref := range sum.MissingField {
		cur, ok := missing[ref.Name]
		if !ok {
			missingOrder = append(missingOrder, ref.Name)
			cur = &CategoryRef{Name: ref.Name, RawName: ref.RawName}
			missing[ref.Name] = cur
		}
		cur.Ordinals = appendUniqueOrdinal(cur.Ordinals, ref.Ordinal)
	}
	for _, name := range missingOrder {
		out["missing-field"] = append(out["missing-field"], *missing[name])
	}

	for _, ref := range sum.MalformedName {
		out["malformed-name"] = append(out["malformed-name"], CategoryRef{
			Name: ref.Name, RawName: ref.RawName, Ordinals: []int{ref.Ordinal},
		})
	}
	return out
}

func appendUniqueOrdinal(ords []int, ord int) []int {
	for _, o := range ords {
		if o == ord {
			return ords
		}
	}
	return append(ords, ord)
}
