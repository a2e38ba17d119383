package reportfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"catlint/internal/check"
	"catlint/internal/diag"
	"catlint/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	noteColor    = color.New(color.Faint)
)

// Pretty форматирует отчёт в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждой находки печатает:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// затем Notes с отступом, затем сводку по категориям и счётчики.
func Pretty(w io.Writer, bag *diag.Bag, sum check.Summary, stats Stats, fs *source.FileSet, opts PrettyOpts) {
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	for i := 0; i < maxItems; i++ {
		d := items[i]
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			formatSpanPath(d.Primary, fs, opts.PathMode),
			severityText(d.Severity, opts.Color),
			d.Code.ID(),
			d.Message)

		if opts.ShowNotes {
			for _, note := range d.Notes {
				line := fmt.Sprintf("  %s: note: %s", formatSpanPath(note.Span, fs, opts.PathMode), note.Msg)
				if opts.Color {
					line = noteColor.Sprint(line)
				}
				fmt.Fprintln(w, line)
			}
		}
	}
	if maxItems < bag.Len() {
		fmt.Fprintf(w, "... and %d more findings (raise --max-findings to see them)\n", bag.Len()-maxItems)
	}
	if maxItems > 0 {
		fmt.Fprintln(w)
	}

	writeSummary(w, bag, sum, stats)
}

func formatSpanPath(span source.Span, fs *source.FileSet, mode PathMode) string {
	f := fs.Get(span.File)
	var path string
	switch mode {
	case PathModeAbsolute:
		path = f.FormatPath("absolute", "")
	case PathModeRelative:
		path = f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		path = f.FormatPath("basename", "")
	default:
		path = f.FormatPath("auto", "")
	}
	start, _ := fs.Resolve(span)
	return fmt.Sprintf("%s:%d:%d", path, start.Line, start.Col)
}

func severityText(sev diag.Severity, useColor bool) string {
	label := sev.String()
	if !useColor {
		return label
	}
	switch sev {
	case diag.SevError:
		return errorColor.Sprint(label)
	case diag.SevWarning:
		return warningColor.Sprint(label)
	default:
		return infoColor.Sprint(label)
	}
}

// writeSummary prints the category table and the counters footer.
func writeSummary(w io.Writer, bag *diag.Bag, sum check.Summary, stats Stats) {
	fmt.Fprintf(w, "catalog: %d entries, %d distinct names\n", stats.Occurrences, stats.Names)

	rows := []struct {
		label string
		count int
	}{
		{"duplicate", len(sum.Duplicates)},
		{"missing-field", len(sum.MissingField)},
		{"malformed-name", len(sum.MalformedName)},
	}
	labelWidth := 0
	for _, r := range rows {
		if lw := runewidth.StringWidth(r.label); lw > labelWidth {
			labelWidth = lw
		}
	}
	for _, r := range rows {
		pad := strings.Repeat(" ", labelWidth-runewidth.StringWidth(r.label))
		fmt.Fprintf(w, "  %s%s  %d\n", r.label, pad, r.count)
	}
	if sum.Ignored > 0 {
		fmt.Fprintf(w, "  (%d occurrences ignored by config)\n", sum.Ignored)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%d findings (%d %s, %d %s, %d info), %d parse %s\n",
		bag.Len(),
		bag.CountBySeverity(diag.SevError), plural(bag.CountBySeverity(diag.SevError), "error", "errors"),
		bag.CountBySeverity(diag.SevWarning), plural(bag.CountBySeverity(diag.SevWarning), "warning", "warnings"),
		bag.CountBySeverity(diag.SevInfo),
		stats.ParseWarnings, plural(stats.ParseWarnings, "warning", "warnings"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
