package check

import (
	"regexp"
	"testing"

	"catlint/internal/catalog"
	"catlint/internal/diag"
)

func buildCatalog(entries ...catalog.Entry) *catalog.Catalog {
	b := catalog.NewBuilder()
	for _, e := range entries {
		b.Add(e)
	}
	return b.Catalog()
}

func runCheck(t *testing.T, cfg Config, entries ...catalog.Entry) (Summary, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag(100)
	sum := Run(buildCatalog(entries...), cfg, diag.BagReporter{Bag: bag})
	return sum, bag
}

func countCode(bag *diag.Bag, code diag.Code) int {
	n := 0
	for _, d := range bag.Items() {
		if d.Code == code {
			n++
		}
	}
	return n
}

func TestNoDuplicatesNoFindings(t *testing.T) {
	sum, bag := runCheck(t, Config{},
		catalog.Entry{RawName: "NullPointerException", Description: "d", Tip: "t"},
		catalog.Entry{RawName: "OutOfMemoryError", Description: "d", Tip: "t"},
	)
	if bag.Len() != 0 {
		t.Errorf("Expected empty bag, got %d findings", bag.Len())
	}
	if len(sum.Duplicates) != 0 {
		t.Errorf("Expected empty duplicate list, got %v", sum.Duplicates)
	}
}

func TestDuplicateMismatchFlaggedOnce(t *testing.T) {
	sum, bag := runCheck(t, Config{},
		catalog.Entry{RawName: "NullPointerException", Description: "d", Tip: "check for null"},
		catalog.Entry{RawName: "NullPointerException", Description: "d", Tip: "use safe calls"},
	)

	if got := countCode(bag, diag.CatDuplicateMismatch); got != 1 {
		t.Errorf("Expected exactly 1 mismatch finding, got %d", got)
	}
	if countCode(bag, diag.CatDuplicateAgree) != 0 {
		t.Error("Expected no agree finding for a diverging group")
	}
	if len(sum.Duplicates) != 1 {
		t.Fatalf("Expected 1 duplicate group, got %d", len(sum.Duplicates))
	}
	g := sum.Duplicates[0]
	if g.Consistent {
		t.Error("Expected group to be marked inconsistent")
	}
	if len(g.Ordinals) != 2 {
		t.Errorf("Expected 2 ordinals, got %v", g.Ordinals)
	}
}

func TestDuplicateAgreeIsInfo(t *testing.T) {
	sum, bag := runCheck(t, Config{},
		catalog.Entry{RawName: "ANR", Description: "d", Tip: "t"},
		catalog.Entry{RawName: "ANR", Description: "d", Tip: "t"},
	)

	if got := countCode(bag, diag.CatDuplicateAgree); got != 1 {
		t.Fatalf("Expected 1 agree finding, got %d", got)
	}
	for _, d := range bag.Items() {
		if d.Code == diag.CatDuplicateAgree && d.Severity != diag.SevInfo {
			t.Errorf("Expected agree finding to be info, got %v", d.Severity)
		}
	}
	if bag.HasErrors() {
		t.Error("Expected agreeing duplicates to produce no errors")
	}
	if !sum.Duplicates[0].Consistent {
		t.Error("Expected group to be consistent")
	}
}

func TestSilentAgreeingDuplicates(t *testing.T) {
	sum, bag := runCheck(t, Config{SilentAgreeingDuplicates: true},
		catalog.Entry{RawName: "ANR", Description: "d", Tip: "t"},
		catalog.Entry{RawName: "ANR", Description: "d", Tip: "t"},
	)
	if bag.Len() != 0 {
		t.Errorf("Expected no findings, got %d", bag.Len())
	}
	// группа всё равно попадает в summary
	if len(sum.Duplicates) != 1 {
		t.Errorf("Expected the group in the summary, got %d", len(sum.Duplicates))
	}
}

func TestMissingFields(t *testing.T) {
	sum, bag := runCheck(t, Config{},
		catalog.Entry{RawName: "A", Description: "", Tip: "t"},
		catalog.Entry{RawName: "B", Description: "d", Tip: ""},
		catalog.Entry{RawName: "C", Description: "", Tip: ""},
	)

	if got := countCode(bag, diag.CatMissingDescription); got != 2 {
		t.Errorf("Expected 2 missing-description findings, got %d", got)
	}
	if got := countCode(bag, diag.CatMissingTip); got != 2 {
		t.Errorf("Expected 2 missing-tip findings, got %d", got)
	}
	if len(sum.MissingField) != 4 {
		t.Errorf("Expected 4 missing-field refs, got %d", len(sum.MissingField))
	}
}

func TestMalformedNames(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"NullPointerException", false},
		{"android.os.DeadObjectException", false},
		{"_internal", false},
		{"9Lives", true},
		{"Null Pointer", true},
		{"-dash", true},
	}
	for _, c := range cases {
		_, bag := runCheck(t, Config{},
			catalog.Entry{RawName: c.raw, Description: "d", Tip: "t"})
		got := countCode(bag, diag.CatMalformedName) == 1
		if got != c.want {
			t.Errorf("%q: expected malformed=%v, got %v", c.raw, c.want, got)
		}
	}
}

func TestCustomNamePattern(t *testing.T) {
	cfg := Config{NamePattern: regexp.MustCompile(`^[A-Z][A-Za-z]*$`)}
	_, bag := runCheck(t, cfg,
		catalog.Entry{RawName: "lowercase", Description: "d", Tip: "t"})
	if countCode(bag, diag.CatMalformedName) != 1 {
		t.Error("Expected custom pattern to reject lowercase names")
	}
}

func TestIgnoreListSkipsAllRules(t *testing.T) {
	sum, bag := runCheck(t, Config{Ignore: map[string]bool{"broken name": true}},
		catalog.Entry{RawName: "Broken Name", Description: "", Tip: ""},
		catalog.Entry{RawName: "Broken Name", Description: "x", Tip: ""},
	)
	if bag.Len() != 0 {
		t.Errorf("Expected ignored entries to produce no findings, got %d", bag.Len())
	}
	if sum.Ignored != 2 {
		t.Errorf("Expected 2 ignored occurrences, got %d", sum.Ignored)
	}
}

// The worked example from the tool's contract: two NullPointerException
// sections with different tips yield one inconsistent duplicate group and
// zero malformed-name findings.
func TestNullPointerExceptionExample(t *testing.T) {
	sum, bag := runCheck(t, Config{},
		catalog.Entry{RawName: "NullPointerException", Description: "d", Tip: "check for null"},
		catalog.Entry{RawName: "NullPointerException", Description: "d", Tip: "use safe calls"},
	)

	if len(sum.Duplicates) != 1 || sum.Duplicates[0].Consistent {
		t.Fatalf("Expected one inconsistent duplicate group, got %+v", sum.Duplicates)
	}
	if len(sum.MalformedName) != 0 {
		t.Errorf("Expected zero malformed-name findings, got %d", len(sum.MalformedName))
	}
	if countCode(bag, diag.CatDuplicateMismatch) != 1 {
		t.Error("Expected exactly one mismatch finding")
	}
}

func TestDeterministicOrder(t *testing.T) {
	entries := []catalog.Entry{
		{RawName: "Zed", Description: "", Tip: "t"},
		{RawName: "Alpha", Description: "d", Tip: ""},
		{RawName: "Zed", Description: "x", Tip: "t"},
	}
	reversed := []catalog.Entry{entries[2], entries[1], entries[0]}

	_, bag1 := runCheck(t, Config{}, entries...)
	_, bag2 := runCheck(t, Config{}, reversed...)

	if bag1.Len() != bag2.Len() {
		t.Fatalf("Expected same finding count, got %d vs %d", bag1.Len(), bag2.Len())
	}
	for i := range bag1.Items() {
		a, b := bag1.Items()[i], bag2.Items()[i]
		if a.Code != b.Code {
			t.Errorf("Finding %d: code %s vs %s", i, a.Code.ID(), b.Code.ID())
		}
	}
}
