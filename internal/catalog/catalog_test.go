package catalog

import (
	"testing"
)

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"NullPointerException", "nullpointerexception"},
		{"  ActivityNotFoundException  ", "activitynotfoundexception"},
		{"ANR", "anr"},
		{"", ""},
		{"   ", ""},
	}
	for _, c := range cases {
		if got := NormalizeName(c.raw); got != c.want {
			t.Errorf("NormalizeName(%q): expected %q, got %q", c.raw, c.want, got)
		}
	}
}

func TestBuilderGroupsCaseInsensitive(t *testing.T) {
	b := NewBuilder()
	b.Add(Entry{RawName: "NullPointerException"})
	b.Add(Entry{RawName: "OutOfMemoryError"})
	b.Add(Entry{RawName: "nullpointerexception"})

	cat := b.Catalog()
	if cat.Len() != 2 {
		t.Fatalf("Expected 2 distinct names, got %d", cat.Len())
	}
	if cat.Total() != 3 {
		t.Errorf("Expected 3 occurrences total, got %d", cat.Total())
	}

	occ := cat.Occurrences("nullpointerexception")
	if len(occ) != 2 {
		t.Fatalf("Expected 2 occurrences of nullpointerexception, got %d", len(occ))
	}
	// RawName хранит написание из документа
	if occ[0].RawName != "NullPointerException" || occ[1].RawName != "nullpointerexception" {
		t.Errorf("Expected raw spellings to be preserved, got %q and %q", occ[0].RawName, occ[1].RawName)
	}
}

func TestBuilderOrdinals(t *testing.T) {
	b := NewBuilder()
	b.Add(Entry{RawName: "A"})
	b.Add(Entry{RawName: "B"})
	b.Add(Entry{RawName: "A"})

	cat := b.Catalog()
	occ := cat.Occurrences("a")
	if occ[0].Ordinal != 1 || occ[1].Ordinal != 3 {
		t.Errorf("Expected ordinals 1 and 3, got %d and %d", occ[0].Ordinal, occ[1].Ordinal)
	}
	if cat.Occurrences("b")[0].Ordinal != 2 {
		t.Errorf("Expected ordinal 2 for B, got %d", cat.Occurrences("b")[0].Ordinal)
	}
}

func TestBuilderDropsEmptyNames(t *testing.T) {
	b := NewBuilder()
	b.Add(Entry{RawName: "   "})
	b.Add(Entry{RawName: "Real"})

	cat := b.Catalog()
	if cat.Len() != 1 || cat.Total() != 1 {
		t.Errorf("Expected only the real entry, got %d names / %d total", cat.Len(), cat.Total())
	}
	// выброшенная запись не занимает ordinal
	if cat.Occurrences("real")[0].Ordinal != 1 {
		t.Errorf("Expected ordinal 1, got %d", cat.Occurrences("real")[0].Ordinal)
	}
}

func TestCatalogOrderAndDuplicates(t *testing.T) {
	b := NewBuilder()
	for _, name := range []string{"Zeta", "Alpha", "Zeta", "Mid"} {
		b.Add(Entry{RawName: name})
	}
	cat := b.Catalog()

	names := cat.Names()
	wantOrder := []string{"zeta", "alpha", "mid"}
	for i, w := range wantOrder {
		if names[i] != w {
			t.Errorf("Names()[%d]: expected %q, got %q", i, w, names[i])
		}
	}

	sorted := cat.SortedNames()
	wantSorted := []string{"alpha", "mid", "zeta"}
	for i, w := range wantSorted {
		if sorted[i] != w {
			t.Errorf("SortedNames()[%d]: expected %q, got %q", i, w, sorted[i])
		}
	}

	dups := cat.Duplicates()
	if len(dups) != 1 || dups[0] != "zeta" {
		t.Errorf("Expected duplicates [zeta], got %v", dups)
	}
}
