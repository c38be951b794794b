package huffman

import (
	"strings"
	"testing"
)

func mustCodeTable(t *testing.T, input string) CodeTable {
	t.Helper()
	root, err := Build(Count(input))
	if err != nil {
		t.Fatalf("Build(%q) failed: %v", input, err)
	}
	return NewCodeTable(root)
}

func TestNewCodeTable_Abacabad(t *testing.T) {
	table := mustCodeTable(t, "abacabad")

	type testRow struct {
		sym  Symbol
		want Code
	}
	testData := [...]testRow{
		{'a', "0"},
		{'b', "10"},
		{'c', "110"},
		{'d', "111"},
	}
	for _, row := range testData {
		if got := table[row.sym]; got != row.want {
			t.Errorf("code for %q = %q, want %q", row.sym, got, row.want)
		}
	}
}

func TestNewCodeTable_SingleLeaf(t *testing.T) {
	table := mustCodeTable(t, "aaaa")
	if len(table) != 1 {
		t.Fatalf("table has %d entries, want 1", len(table))
	}
	if got := table['a']; got != "0" {
		t.Errorf("degenerate code = %q, want \"0\"", got)
	}
}

func TestNewCodeTable_NilRoot(t *testing.T) {
	if table := NewCodeTable(nil); len(table) != 0 {
		t.Errorf("table for nil root has %d entries, want 0", len(table))
	}
}

func TestNewCodeTable_PrefixFree(t *testing.T) {
	inputs := []string{
		"abacabad",
		"mississippi",
		"the quick brown fox jumps over the lazy dog",
		"hello, world! 123",
		"abcdefghijklmnopqrstuvwxyz",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			table := mustCodeTable(t, input)
			for s1, c1 := range table {
				if len(c1) == 0 {
					t.Errorf("code for %q is empty", s1)
				}
				for s2, c2 := range table {
					if s1 == s2 {
						continue
					}
					if strings.HasPrefix(string(c2), string(c1)) {
						t.Errorf("code %q (%q) is a prefix of %q (%q)", c1, s1, c2, s2)
					}
				}
			}
		})
	}
}

func TestNewCodeTable_MonotoneCodeLength(t *testing.T) {
	inputs := []string{
		"abacabad",
		"mississippi",
		"the quick brown fox jumps over the lazy dog",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			ft := Count(input)
			table := mustCodeTable(t, input)
			// Non-strict: a strictly more frequent symbol never gets a
			// strictly longer code.  Ties may order either way.
			for _, s1 := range ft.Symbols() {
				for _, s2 := range ft.Symbols() {
					if ft.Of(s1) > ft.Of(s2) && table[s1].Size() > table[s2].Size() {
						t.Errorf("symbol %q (freq %d) has longer code %q than %q (freq %d, code %q)",
							s1, ft.Of(s1), table[s1], s2, ft.Of(s2), table[s2])
					}
				}
			}
		})
	}
}

func TestNewCodeTable_CoversAllSymbols(t *testing.T) {
	ft := Count("the quick brown fox")
	table := mustCodeTable(t, "the quick brown fox")
	if len(table) != ft.Len() {
		t.Fatalf("table has %d entries, want %d", len(table), ft.Len())
	}
	for _, sym := range ft.Symbols() {
		if _, ok := table[sym]; !ok {
			t.Errorf("symbol %q has no code", sym)
		}
	}
}
