package reportfmt

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"catlint/internal/check"
	"catlint/internal/diag"
	"catlint/internal/source"
)

// Msgpack serializes the report for machine consumers. Map keys are sorted
// so that identical inputs yield byte-identical output.
func Msgpack(w io.Writer, bag *diag.Bag, sum check.Summary, stats Stats, fs *source.FileSet, opts EncodeOpts) error {
	return EncodeOutputMsgpack(w, BuildOutput(bag, sum, stats, fs, opts))
}

// EncodeOutputMsgpack serializes an already-built (possibly merged) Output.
func EncodeOutputMsgpack(w io.Writer, output Output) error {
	enc := msgpack.NewEncoder(w)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(output); err != nil {
		return fmt.Errorf("failed to encode msgpack report: %w", err)
	}
	return nil
}

// DecodeMsgpack reads a report back; used by tests and downstream tooling.
func DecodeMsgpack(r io.Reader) (Output, error) {
	var output Output
	if err := msgpack.NewDecoder(r).Decode(&output); err != nil {
		return Output{}, fmt.Errorf("failed to decode msgpack report: %w", err)
	}
	if output.Schema != OutputSchemaVersion {
		return Output{}, fmt.Errorf("unsupported report schema %d (want %d)", output.Schema, OutputSchemaVersion)
	}
	return output, nil
}
