// Package reportfmt renders a findings bag plus check summary into the
// output formats the CLI exposes: pretty text, JSON and msgpack.
package reportfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto chooses relative or absolute path automatically.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures pretty-printing of the report.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	ShowNotes bool
	// Max обрезает вывод находок, не Bag. 0 — без ограничения.
	Max int
}

// EncodeOpts configures the structured (JSON, msgpack) output.
type EncodeOpts struct {
	IncludePositions bool // добавить line/col к каждой локации
	PathMode         PathMode
	IncludeNotes     bool
	Max              int
}

// Stats carries the per-run counters shown in the report summary.
type Stats struct {
	Occurrences   int // parsed entries, duplicates included
	Names         int // distinct normalized names
	ParseWarnings int
}
