package huffman

// Symbol represents one character of the input alphabet.
type Symbol byte

// Substitute stands in for the ASCII space character in frequency tables,
// code tables, and trees, so that rendered tables never contain a literal
// space.  Space is mapped to Substitute before counting and encoding, and
// mapped back on decode.  Substitute is reserved: input containing a
// literal '-' is outside the codec's alphabet.
const Substitute Symbol = '-'

// substituted maps an input character to the Symbol it is recorded under.
func substituted(b byte) Symbol {
	if b == ' ' {
		return Substitute
	}
	return Symbol(b)
}

// restored maps a decoded Symbol back to the original input character.
func restored(s Symbol) byte {
	if s == Substitute {
		return ' '
	}
	return byte(s)
}
