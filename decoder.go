package huffman

import (
	"fmt"
)

// Decode walks the tree rooted at root for each bit of stream: '0' descends
// to the left child, '1' to the right.  Reaching a leaf appends its symbol
// to the output, with the space substitution reversed, and resets the walk
// to the root.  For a single-leaf root every bit emits the sole symbol
// without moving.
//
// The stream is fully matched when it is exhausted with the walk back at
// the root.  A stream exhausted mid-codeword fails with ErrTruncatedStream;
// a byte other than '0' or '1' fails with ErrInvalidBit.
func Decode(stream string, root *Node) (string, error) {
	if len(stream) == 0 {
		return "", nil
	}
	if root == nil {
		return "", fmt.Errorf("decoding: no tree: %w", ErrEmptyAlphabet)
	}

	out := make([]byte, 0, len(stream))
	cursor := root
	for i := 0; i < len(stream); i++ {
		switch stream[i] {
		case '0':
			if !root.IsLeaf() {
				cursor = cursor.Left
			}
		case '1':
			if !root.IsLeaf() {
				cursor = cursor.Right
			}
		default:
			return "", fmt.Errorf("decoding: byte %q at offset %d: %w", stream[i], i, ErrInvalidBit)
		}
		if cursor.IsLeaf() {
			out = append(out, restored(cursor.Sym))
			cursor = root
		}
	}
	if cursor != root {
		return "", fmt.Errorf("decoding: stream ends mid-codeword: %w", ErrTruncatedStream)
	}
	return string(out), nil
}
