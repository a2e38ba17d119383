// Package driver wires the pipeline together: load a document, parse it
// into entries, fold them into a catalog, run the consistency checks and
// hand back a sorted findings bag per file.
package driver

import (
	"context"
	"fmt"

	"catlint/internal/catalog"
	"catlint/internal/check"
	"catlint/internal/diag"
	"catlint/internal/parser"
	"catlint/internal/source"
)

// DefaultMaxFindings bounds the bag when the caller does not override it.
const DefaultMaxFindings = 256

// Options configures one pipeline run.
type Options struct {
	ParserOpts parser.Options
	CheckCfg   check.Config
	// MaxFindings caps the bag. 0 means DefaultMaxFindings.
	MaxFindings int
	// NoWarnings drops warning-level findings from the result.
	NoWarnings bool
	// WarningsAsErrors promotes warnings before the bag is sorted.
	WarningsAsErrors bool
}

func (o Options) maxFindings() int {
	if o.MaxFindings > 0 {
		return o.MaxFindings
	}
	return DefaultMaxFindings
}

// Result is the outcome of checking a single document.
type Result struct {
	Path    string
	FileID  source.FileID
	FileSet *source.FileSet
	Catalog *catalog.Catalog
	Summary check.Summary
	Bag     *diag.Bag

	// Occurrences and Names are the catalog counters for the summary.
	Occurrences   int
	Names         int
	ParseWarnings int
}

// CheckFile runs the pipeline over a document on disk.
func CheckFile(ctx context.Context, path string, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fset := source.NewFileSet()
	id, err := fset.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return run(fset, id, opts), nil
}

// CheckSource runs the pipeline over in-memory content (stdin, tests).
func CheckSource(name string, content []byte, opts Options) *Result {
	fset := source.NewFileSet()
	id := fset.AddVirtual(name, content)
	return run(fset, id, opts)
}

func run(fset *source.FileSet, id source.FileID, opts Options) *Result {
	bag := diag.NewBag(opts.maxFindings())
	reporter := diag.BagReporter{Bag: bag}
	file := fset.Get(id)

	parseRes := parser.New(file, opts.ParserOpts, reporter).Parse()

	builder := catalog.NewBuilder()
	for _, e := range parseRes.Entries {
		builder.Add(e)
	}
	cat := builder.Catalog()

	if cat.Len() == 0 {
		diag.ReportWarning(reporter, diag.CatEmptyCatalog,
			source.Span{File: id}, "no catalog sections recognized").Emit()
	}

	sum := check.Run(cat, opts.CheckCfg, reporter)

	if opts.NoWarnings {
		bag.Filter(func(d diag.Diagnostic) bool { return d.Severity != diag.SevWarning })
	}
	if opts.WarningsAsErrors {
		bag.Promote(diag.SevWarning, diag.SevError)
	}
	bag.Sort()

	return &Result{
		Path:          file.Path,
		FileID:        id,
		FileSet:       fset,
		Catalog:       cat,
		Summary:       sum,
		Bag:           bag,
		Occurrences:   cat.Total(),
		Names:         cat.Len(),
		ParseWarnings: parseRes.Warnings,
	}
}
