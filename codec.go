package huffman

// Codec is one codec session: the frequency table, Huffman tree, code
// table, and encoded stream built from a single input string.  The tree is
// retained because decoding traverses it; the code table alone is not
// enough.  A Codec is immutable once New returns and safe for concurrent
// readers.
type Codec struct {
	input   string
	freqs   *FrequencyTable
	tree    *Node
	codes   CodeTable
	encoded string
}

// New runs the full pipeline over input: frequency counting, tree
// construction, code assignment, and encoding.  Empty input fails with
// ErrEmptyAlphabet; callers that want to treat empty text as a no-op must
// short-circuit before calling New.
func New(input string) (*Codec, error) {
	freqs := Count(input)
	tree, err := Build(freqs)
	if err != nil {
		return nil, err
	}
	codes := NewCodeTable(tree)
	encoded, err := Encode(input, codes)
	if err != nil {
		return nil, err
	}
	return &Codec{
		input:   input,
		freqs:   freqs,
		tree:    tree,
		codes:   codes,
		encoded: encoded,
	}, nil
}

// Input returns the original input string.
func (c *Codec) Input() string {
	return c.input
}

// Frequencies returns the session's frequency table.
func (c *Codec) Frequencies() *FrequencyTable {
	return c.freqs
}

// Tree returns the root of the session's Huffman tree.
func (c *Codec) Tree() *Node {
	return c.tree
}

// Codes returns the session's code table.
func (c *Codec) Codes() CodeTable {
	return c.codes
}

// Encoded returns the session's encoded bit-stream as '0'/'1' text.
func (c *Codec) Encoded() string {
	return c.encoded
}

// Decode decodes an arbitrary bit-stream against the session's tree.
func (c *Codec) Decode(stream string) (string, error) {
	return Decode(stream, c.tree)
}

// RoundTrip decodes the session's own encoded stream.
func (c *Codec) RoundTrip() (string, error) {
	return Decode(c.encoded, c.tree)
}

// Verify reports whether decoding the encoded stream reproduces the input.
// A false result indicates a correctness bug in the pipeline and should be
// treated as a test failure, never swallowed.
func (c *Codec) Verify() bool {
	out, err := c.RoundTrip()
	return err == nil && out == c.input
}

// OriginalBits returns the size of the input at eight bits per symbol.
func (c *Codec) OriginalBits() int {
	return len(c.input) * 8
}

// EncodedBits returns the length of the encoded stream in bits.
func (c *Codec) EncodedBits() int {
	return len(c.encoded)
}

// Ratio returns the compression ratio, original bits over encoded bits.
func (c *Codec) Ratio() float64 {
	return float64(c.OriginalBits()) / float64(c.EncodedBits())
}
