package reportfmt

import (
	"encoding/json"
	"io"

	"catlint/internal/check"
	"catlint/internal/diag"
	"catlint/internal/source"
)

// JSON сериализует отчёт в JSON (с отступами, детерминированный порядок
// ключей за счёт encoding/json).
func JSON(w io.Writer, bag *diag.Bag, sum check.Summary, stats Stats, fs *source.FileSet, opts EncodeOpts) error {
	return EncodeOutputJSON(w, BuildOutput(bag, sum, stats, fs, opts))
}

// EncodeOutputJSON serializes an already-built (possibly merged) Output.
func EncodeOutputJSON(w io.Writer, output Output) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
