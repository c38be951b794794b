package huffman

import (
	"fmt"
	"strings"
)

// Encode maps input to its bit-stream under table by looking up and
// concatenating, in input order, the code for each symbol.  The ASCII space
// character is looked up under Substitute, mirroring Count.
//
// The table must have been derived from input's own frequency table.  A
// symbol with no entry fails with ErrUnknownSymbol, which can only happen
// when the table was built from different statistics.
func Encode(input string, table CodeTable) (string, error) {
	var sb strings.Builder
	for i := 0; i < len(input); i++ {
		sym := substituted(input[i])
		code, ok := table[sym]
		if !ok {
			return "", fmt.Errorf("encoding %q: %w", input[i], ErrUnknownSymbol)
		}
		sb.WriteString(string(code))
	}
	return sb.String(), nil
}
