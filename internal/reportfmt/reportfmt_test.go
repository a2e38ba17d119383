package reportfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"catlint/internal/check"
	"catlint/internal/diag"
	"catlint/internal/source"
)

func testFixture(t *testing.T) (*diag.Bag, check.Summary, Stats, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("cat.md", []byte("# NullPointerException\ntext\n\n# NullPointerException\nother\n"))

	bag := diag.NewBag(100)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.CatDuplicateMismatch,
		Message:  `entry "NullPointerException" is documented 2 times with diverging text`,
		Primary:  source.Span{File: id, Start: 0, End: 22},
		Notes: []diag.Note{
			{Span: source.Span{File: id, Start: 29, End: 51}, Msg: "occurrence 2 differs here"},
		},
	})
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.CatMissingTip,
		Message:  `entry "NullPointerException" has no prevention tip`,
		Primary:  source.Span{File: id, Start: 0, End: 22},
	})
	bag.Sort()

	sum := check.Summary{
		Duplicates: []check.DuplicateGroup{
			{Name: "nullpointerexception", RawName: "NullPointerException", Ordinals: []int{1, 2}},
		},
		MissingField: []check.EntryRef{
			{Name: "nullpointerexception", RawName: "NullPointerException", Ordinal: 1, Field: "tip"},
			{Name: "nullpointerexception", RawName: "NullPointerException", Ordinal: 2, Field: "tip"},
		},
	}
	stats := Stats{Occurrences: 2, Names: 1, ParseWarnings: 0}
	return bag, sum, stats, fs
}

func TestPrettyOutput(t *testing.T) {
	bag, sum, stats, fs := testFixture(t)

	var buf bytes.Buffer
	Pretty(&buf, bag, sum, stats, fs, PrettyOpts{ShowNotes: true})
	out := buf.String()

	if !strings.Contains(out, "cat.md:1:1: ERROR CAT2002:") {
		t.Errorf("Expected mismatch finding line, got:\n%s", out)
	}
	if !strings.Contains(out, "cat.md:4:1: note: occurrence 2 differs here") {
		t.Errorf("Expected note line, got:\n%s", out)
	}
	if !strings.Contains(out, "catalog: 2 entries, 1 distinct names") {
		t.Errorf("Expected catalog stats line, got:\n%s", out)
	}
	if !strings.Contains(out, "duplicate") || !strings.Contains(out, "missing-field") {
		t.Errorf("Expected category table, got:\n%s", out)
	}
	if !strings.Contains(out, "2 findings (2 errors, 0 warnings, 0 info), 0 parse warnings") {
		t.Errorf("Expected counters footer, got:\n%s", out)
	}
}

func TestPrettyMaxTruncates(t *testing.T) {
	bag, sum, stats, fs := testFixture(t)

	var buf bytes.Buffer
	Pretty(&buf, bag, sum, stats, fs, PrettyOpts{Max: 1})
	out := buf.String()

	if !strings.Contains(out, "and 1 more findings") {
		t.Errorf("Expected truncation notice, got:\n%s", out)
	}
}

func TestJSONShape(t *testing.T) {
	bag, sum, stats, fs := testFixture(t)

	var buf bytes.Buffer
	err := JSON(&buf, bag, sum, stats, fs, EncodeOpts{IncludePositions: true, IncludeNotes: true})
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	var decoded Output
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded.Schema != OutputSchemaVersion {
		t.Errorf("Expected schema %d, got %d", OutputSchemaVersion, decoded.Schema)
	}
	if len(decoded.Findings) != 2 {
		t.Fatalf("Expected 2 findings, got %d", len(decoded.Findings))
	}
	if decoded.Findings[0].Category != "duplicate" {
		t.Errorf("Expected first finding category duplicate, got %q", decoded.Findings[0].Category)
	}
	if decoded.Findings[0].Location.StartLine != 1 {
		t.Errorf("Expected start line 1, got %d", decoded.Findings[0].Location.StartLine)
	}
	if len(decoded.Findings[0].Notes) != 1 {
		t.Errorf("Expected 1 note, got %d", len(decoded.Findings[0].Notes))
	}

	dups := decoded.Categories["duplicate"]
	if len(dups) != 1 || dups[0].Name != "nullpointerexception" {
		t.Errorf("Expected one duplicate group, got %v", dups)
	}
	if len(dups[0].Ordinals) != 2 {
		t.Errorf("Expected ordinals [1 2], got %v", dups[0].Ordinals)
	}

	// missing-field свёрнут по имени с каждым ordinal
	miss := decoded.Categories["missing-field"]
	if len(miss) != 1 || len(miss[0].Ordinals) != 2 {
		t.Errorf("Expected folded missing-field group with 2 ordinals, got %v", miss)
	}

	if decoded.Summary.Errors != 2 || decoded.Summary.Findings != 2 {
		t.Errorf("Unexpected summary: %+v", decoded.Summary)
	}
}

func TestJSONDeterministic(t *testing.T) {
	bag, sum, stats, fs := testFixture(t)

	var a, b bytes.Buffer
	opts := EncodeOpts{IncludePositions: true, IncludeNotes: true}
	if err := JSON(&a, bag, sum, stats, fs, opts); err != nil {
		t.Fatal(err)
	}
	if err := JSON(&b, bag, sum, stats, fs, opts); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("Expected byte-identical JSON reports for identical input")
	}
}

func TestMsgpackRoundtrip(t *testing.T) {
	bag, sum, stats, fs := testFixture(t)

	var buf bytes.Buffer
	if err := Msgpack(&buf, bag, sum, stats, fs, EncodeOpts{IncludeNotes: true}); err != nil {
		t.Fatalf("Msgpack failed: %v", err)
	}

	decoded, err := DecodeMsgpack(&buf)
	if err != nil {
		t.Fatalf("DecodeMsgpack failed: %v", err)
	}
	if len(decoded.Findings) != 2 {
		t.Errorf("Expected 2 findings after roundtrip, got %d", len(decoded.Findings))
	}
	if decoded.Summary.Occurrences != 2 {
		t.Errorf("Expected 2 occurrences in summary, got %d", decoded.Summary.Occurrences)
	}
}

func TestMsgpackDeterministic(t *testing.T) {
	bag, sum, stats, fs := testFixture(t)

	var a, b bytes.Buffer
	opts := EncodeOpts{IncludeNotes: true}
	if err := Msgpack(&a, bag, sum, stats, fs, opts); err != nil {
		t.Fatal(err)
	}
	if err := Msgpack(&b, bag, sum, stats, fs, opts); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("Expected byte-identical msgpack reports for identical input")
	}
}
