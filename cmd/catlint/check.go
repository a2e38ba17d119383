package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"catlint/internal/diag"
	"catlint/internal/driver"
	"catlint/internal/reportfmt"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file|directory|->",
	Short: "Check an exception catalog for inconsistencies",
	Long: `Check a catalog document (or every catalog document in a directory)
for duplicate entries with diverging text, missing descriptions or
prevention tips, and malformed entry names. Use "-" to read from stdin.
Exits 0 when no findings rise to error level, 1 otherwise`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

// init registers CLI flags for the check command used by runCheck.
func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack|short)")
	checkCmd.Flags().Bool("no-warnings", false, "ignore warnings in the report")
	checkCmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("with-notes", false, "include finding notes in output")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

// runCheck executes the "check" command: it resolves flags and the nearest
// catlint.toml, runs the pipeline for the provided path (single file,
// directory or stdin), renders the report in the chosen format, and exits
// with status 1 when any finding is an error.
func runCheck(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "msgpack", "short":
		// supported
	default:
		return fmt.Errorf("unsupported format %q (must be pretty, json, msgpack or short)", format)
	}

	noWarnings, err := cmd.Flags().GetBool("no-warnings")
	if err != nil {
		return fmt.Errorf("failed to get no-warnings flag: %w", err)
	}
	warningsAsErrors, err := cmd.Flags().GetBool("warnings-as-errors")
	if err != nil {
		return fmt.Errorf("failed to get warnings-as-errors flag: %w", err)
	}
	if noWarnings && warningsAsErrors {
		return fmt.Errorf("no-warnings and warnings-as-errors flags cannot be used together")
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	opts, exts, err := resolveDriverOptions(cmd, inputPath)
	if err != nil {
		return err
	}
	opts.NoWarnings = noWarnings
	opts.WarningsAsErrors = warningsAsErrors

	useColor, err := resolveColor(cmd)
	if err != nil {
		return err
	}

	results, err := collectResults(cmd, inputPath, exts, jobs, opts)
	if err != nil {
		return err
	}

	pathMode := reportfmt.PathModeAuto
	if fullPath {
		pathMode = reportfmt.PathModeAbsolute
	}

	hasErrors := false
	for _, r := range results {
		if r.Bag.HasErrors() {
			hasErrors = true
		}
	}

	switch format {
	case "pretty":
		prettyOpts := reportfmt.PrettyOpts{
			Color:     useColor,
			PathMode:  pathMode,
			ShowNotes: withNotes,
		}
		for i, r := range results {
			if len(results) > 1 {
				fmt.Fprintf(os.Stdout, "== %s ==\n", r.Path)
			}
			reportfmt.Pretty(os.Stdout, r.Bag, r.Summary, resultStats(r), r.FileSet, prettyOpts)
			if i < len(results)-1 {
				fmt.Fprintln(os.Stdout)
			}
		}
		if len(results) > 1 && !quiet {
			fmt.Fprintf(os.Stdout, "\nchecked %d documents\n", len(results))
		}

	case "short":
		for _, r := range results {
			output := diag.FormatShortFindings(r.Bag.Items(), r.FileSet, withNotes)
			if output != "" {
				fmt.Fprintln(os.Stdout, output)
			}
		}

	case "json", "msgpack":
		encodeOpts := reportfmt.EncodeOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     withNotes,
		}
		if err := encodeMerged(os.Stdout, results, format, encodeOpts); err != nil {
			return err
		}
	}

	if hasErrors {
		os.Exit(1)
	}
	return nil
}

// collectResults runs the pipeline for a file, a directory or stdin ("-").
func collectResults(cmd *cobra.Command, inputPath string, exts []string, jobs int, opts driver.Options) ([]*driver.Result, error) {
	if inputPath == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return []*driver.Result{driver.CheckSource("<stdin>", content, opts)}, nil
	}

	st, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}
	if st.IsDir() {
		return driver.CheckDir(cmd.Context(), inputPath, exts, jobs, opts)
	}

	res, err := driver.CheckFile(cmd.Context(), inputPath, opts)
	if err != nil {
		return nil, err
	}
	return []*driver.Result{res}, nil
}

func resultStats(r *driver.Result) reportfmt.Stats {
	return reportfmt.Stats{
		Occurrences:   r.Occurrences,
		Names:         r.Names,
		ParseWarnings: r.ParseWarnings,
	}
}

// encodeMerged folds every per-file report into one structured document so
// that directory runs still emit a single JSON/msgpack payload.
func encodeMerged(w io.Writer, results []*driver.Result, format string, opts reportfmt.EncodeOpts) error {
	merged := reportfmt.Output{
		Schema: reportfmt.OutputSchemaVersion,
		Categories: map[string][]reportfmt.CategoryRef{
			"duplicate":      {},
			"missing-field":  {},
			"malformed-name": {},
		},
		Findings: []reportfmt.FindingOut{},
	}
	for _, r := range results {
		out := reportfmt.BuildOutput(r.Bag, r.Summary, resultStats(r), r.FileSet, opts)
		merged.Findings = append(merged.Findings, out.Findings...)
		for category, refs := range out.Categories {
			merged.Categories[category] = append(merged.Categories[category], refs...)
		}
		merged.Summary.Findings += out.Summary.Findings
		merged.Summary.Errors += out.Summary.Errors
		merged.Summary.Warnings += out.Summary.Warnings
		merged.Summary.Infos += out.Summary.Infos
		merged.Summary.ParseWarnings += out.Summary.ParseWarnings
		merged.Summary.Occurrences += out.Summary.Occurrences
		merged.Summary.Names += out.Summary.Names
		merged.Summary.Ignored += out.Summary.Ignored
	}

	if format == "msgpack" {
		return reportfmt.EncodeOutputMsgpack(w, merged)
	}
	return reportfmt.EncodeOutputJSON(w, merged)
}
