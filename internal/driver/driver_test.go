package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"catlint/internal/diag"
)

const npeDoc = `# NullPointerException

Thrown when the app dereferences a null object reference.

Prevention: check for null

# NullPointerException

Thrown when the app dereferences a null object reference.

Prevention: use safe calls
`

func TestCheckSourceEndToEnd(t *testing.T) {
	res := CheckSource("cat.md", []byte(npeDoc), Options{})

	if res.Occurrences != 2 || res.Names != 1 {
		t.Errorf("Expected 2 occurrences of 1 name, got %d/%d", res.Occurrences, res.Names)
	}
	if res.ParseWarnings != 0 {
		t.Errorf("Expected no parse warnings, got %d", res.ParseWarnings)
	}

	// одна несовпадающая группа дубликатов, без malformed-name
	if len(res.Summary.Duplicates) != 1 || res.Summary.Duplicates[0].Consistent {
		t.Fatalf("Expected one inconsistent duplicate group, got %+v", res.Summary.Duplicates)
	}
	if len(res.Summary.MalformedName) != 0 {
		t.Errorf("Expected no malformed names, got %v", res.Summary.MalformedName)
	}
	if !res.Bag.HasErrors() {
		t.Error("Expected the mismatch to be an error")
	}
}

func TestCheckSourceDeterministicReport(t *testing.T) {
	a := CheckSource("cat.md", []byte(npeDoc), Options{})
	b := CheckSource("cat.md", []byte(npeDoc), Options{})

	outA := diag.FormatShortFindings(a.Bag.Items(), a.FileSet, true)
	outB := diag.FormatShortFindings(b.Bag.Items(), b.FileSet, true)
	if outA != outB {
		t.Errorf("Expected identical reports for identical input:\n%s\n--- vs ---\n%s", outA, outB)
	}
	if outA == "" {
		t.Error("Expected a non-empty report")
	}
}

func TestCheckSourceEmptyCatalog(t *testing.T) {
	res := CheckSource("cat.md", []byte("just prose, no sections\n"), Options{})

	found := false
	for _, d := range res.Bag.Items() {
		if d.Code == diag.CatEmptyCatalog {
			found = true
			if d.Severity != diag.SevWarning {
				t.Errorf("Expected CatEmptyCatalog to be a warning, got %v", d.Severity)
			}
		}
	}
	if !found {
		t.Error("Expected a CatEmptyCatalog finding")
	}
}

func TestNoWarningsFilters(t *testing.T) {
	res := CheckSource("cat.md", []byte("prose only\n"), Options{NoWarnings: true})
	if res.Bag.HasWarnings() {
		t.Error("Expected warnings to be filtered out")
	}
}

func TestWarningsAsErrors(t *testing.T) {
	res := CheckSource("cat.md", []byte("prose only\n"), Options{WarningsAsErrors: true})
	if !res.Bag.HasErrors() {
		t.Error("Expected the empty-catalog warning to be promoted to an error")
	}
}

func TestMaxFindingsCapsBag(t *testing.T) {
	doc := ""
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		doc += "# " + name + "\n\n" // ни описания, ни совета — по 2 находки
	}
	res := CheckSource("cat.md", []byte(doc), Options{MaxFindings: 3})
	if res.Bag.Len() != 3 {
		t.Errorf("Expected the bag to be capped at 3, got %d", res.Bag.Len())
	}
}

func TestCheckFileMissing(t *testing.T) {
	_, err := CheckFile(context.Background(), filepath.Join(t.TempDir(), "absent.md"), Options{})
	if err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	write("b.md", "# Beta\ntext\n\nPrevention: tip\n")
	write("a.md", "# Alpha\ntext\n\nPrevention: tip\n")
	write("ignored.rst", "# NotScanned\n")

	results, err := CheckDir(context.Background(), dir, []string{".md"}, 2, Options{})
	if err != nil {
		t.Fatalf("CheckDir failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	// результаты в порядке путей, не в порядке завершения
	if filepath.Base(results[0].Path) != "a.md" || filepath.Base(results[1].Path) != "b.md" {
		t.Errorf("Expected results in path order, got %s then %s", results[0].Path, results[1].Path)
	}
	for _, r := range results {
		if r.Bag.HasErrors() {
			t.Errorf("%s: expected a clean document, got errors", r.Path)
		}
	}
}

func TestCheckDirEmpty(t *testing.T) {
	_, err := CheckDir(context.Background(), t.TempDir(), []string{".md"}, 0, Options{})
	if err == nil {
		t.Error("Expected an error when no documents match")
	}
}

func TestCheckDirCancelled(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.md"), []byte("# A\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := CheckDir(ctx, dir, []string{".md"}, 1, Options{}); err == nil {
		t.Error("Expected a cancelled context to abort the run")
	}
}
