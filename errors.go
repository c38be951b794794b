package huffman

import "errors"

// Sentinel errors for contract violations between pipeline stages.  They
// signal caller misuse on mismatched data rather than recoverable runtime
// conditions, and are wrapped at call sites; test with errors.Is.
var (
	// ErrEmptyAlphabet reports a tree build over a frequency table with no
	// symbols, which only an empty input can produce.
	ErrEmptyAlphabet = errors.New("huffman: empty alphabet")

	// ErrUnknownSymbol reports an encode of a symbol absent from the code
	// table, meaning the table was built from different statistics than
	// the string being encoded.
	ErrUnknownSymbol = errors.New("huffman: symbol not in code table")

	// ErrTruncatedStream reports a decode whose input ran out in the
	// middle of a codeword.
	ErrTruncatedStream = errors.New("huffman: truncated stream")

	// ErrInvalidBit reports a stream byte other than '0' or '1'.
	ErrInvalidBit = errors.New("huffman: invalid bit")
)
