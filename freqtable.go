package huffman

// FrequencyTable records how many times each Symbol occurs in one input
// string, together with the order in which symbols were first observed.
// The observation order is what keeps tree construction deterministic when
// two symbols share a frequency.
type FrequencyTable struct {
	counts map[Symbol]int
	order  []Symbol
}

// Count scans input in order and produces its FrequencyTable.  The ASCII
// space character is recorded under Substitute.  An empty input yields an
// empty table.
func Count(input string) *FrequencyTable {
	ft := &FrequencyTable{counts: make(map[Symbol]int, 16)}
	for i := 0; i < len(input); i++ {
		sym := substituted(input[i])
		if _, seen := ft.counts[sym]; !seen {
			ft.order = append(ft.order, sym)
		}
		ft.counts[sym]++
	}
	return ft
}

// Len returns the number of distinct symbols in the table.
func (ft *FrequencyTable) Len() int {
	return len(ft.order)
}

// Of returns the occurrence count recorded for sym, or 0 if sym never
// occurred.
func (ft *FrequencyTable) Of(sym Symbol) int {
	return ft.counts[sym]
}

// Symbols returns the distinct symbols in first-observation order.  The
// returned slice is shared with the table and must not be modified.
func (ft *FrequencyTable) Symbols() []Symbol {
	return ft.order
}

// Total returns the sum of all counts, which equals the length of the
// counted input.
func (ft *FrequencyTable) Total() int {
	var total int
	for _, n := range ft.counts {
		total += n
	}
	return total
}
