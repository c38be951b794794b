package huffman

// Code is the bit-string assigned to one Symbol, rendered as '0' and '1'
// characters with the first bit leftmost.  A valid Code is never empty.
type Code string

// Size returns the number of bits in the code.
func (c Code) Size() int {
	return len(c)
}
