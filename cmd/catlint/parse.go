package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"catlint/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file|->",
	Short: "Dump the entries extracted from a catalog document",
	Long: `Parse a catalog document and print the extracted entries without
running the consistency checks. Useful for debugging the section grammar
when a document is not recognized the way you expect`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type entryDump struct {
	Ordinal     int    `json:"ordinal"`
	Name        string `json:"name"`
	RawName     string `json:"raw_name"`
	Description string `json:"description"`
	Tip         string `json:"tip"`
	Line        uint32 `json:"line"`
}

// runParse executes the "parse" command: it runs only the parsing half of
// the pipeline and dumps every extracted entry with its ordinal and heading
// line. Exits nonzero only on tool errors, never on parse warnings.
func runParse(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json":
		// supported
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}

	opts, _, err := resolveDriverOptions(cmd, inputPath)
	if err != nil {
		return err
	}

	var res *driver.Result
	if inputPath == "-" {
		content, readErr := io.ReadAll(os.Stdin)
		if readErr != nil {
			return fmt.Errorf("failed to read stdin: %w", readErr)
		}
		res = driver.CheckSource("<stdin>", content, opts)
	} else {
		res, err = driver.CheckFile(cmd.Context(), inputPath, opts)
		if err != nil {
			return err
		}
	}

	dumps := make([]entryDump, 0, res.Catalog.Total())
	for _, name := range res.Catalog.Names() {
		for _, e := range res.Catalog.Occurrences(name) {
			start, _ := res.FileSet.Resolve(e.Heading)
			dumps = append(dumps, entryDump{
				Ordinal:     e.Ordinal,
				Name:        e.Name,
				RawName:     e.RawName,
				Description: e.Description,
				Tip:         e.Tip,
				Line:        start.Line,
			})
		}
	}
	// ordinal = документный порядок
	sort.Slice(dumps, func(i, j int) bool { return dumps[i].Ordinal < dumps[j].Ordinal })

	if format == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(dumps)
	}

	for _, d := range dumps {
		fmt.Fprintf(os.Stdout, "%3d. %s (line %d)\n", d.Ordinal, d.RawName, d.Line)
		fmt.Fprintf(os.Stdout, "     description: %s\n", orPlaceholder(d.Description))
		fmt.Fprintf(os.Stdout, "     tip:         %s\n", orPlaceholder(d.Tip))
	}
	fmt.Fprintf(os.Stdout, "\n%d entries, %d parse warnings\n", len(dumps), res.ParseWarnings)
	return nil
}

func orPlaceholder(s string) string {
	if s == "" {
		return "(empty)"
	}
	return s
}
