// Package hufio packs '0'/'1' encoded streams into bytes and back.  The
// packed form carries no header or magic; the caller keeps the bit count
// alongside the bytes.
package hufio

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// Pack writes stream into a byte slice, eight bits per byte with the first
// bit in the most significant position and the final byte zero-padded.  It
// returns the packed bytes and the number of valid bits.
func Pack(stream string) ([]byte, int, error) {
	buf := new(bytes.Buffer)
	w := bitio.NewWriter(buf)
	for i := 0; i < len(stream); i++ {
		switch stream[i] {
		case '0':
			w.TryWriteBool(false)
		case '1':
			w.TryWriteBool(true)
		default:
			return nil, 0, fmt.Errorf("hufio: pack: byte %q at offset %d is not a bit", stream[i], i)
		}
	}
	if w.TryError != nil {
		return nil, 0, w.TryError
	}
	// Close aligns the writer to a byte boundary.
	if err := w.Close(); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), len(stream), nil
}

// Unpack reverses Pack, reading nbits bits from data back into '0'/'1'
// text.  Padding bits beyond nbits are ignored.
func Unpack(data []byte, nbits int) (string, error) {
	if nbits < 0 || nbits > len(data)*8 {
		return "", fmt.Errorf("hufio: unpack: %d bits not available in %d bytes", nbits, len(data))
	}
	r := bitio.NewReader(bytes.NewReader(data))
	out := make([]byte, nbits)
	for i := 0; i < nbits; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return "", fmt.Errorf("hufio: unpack: %w", err)
		}
		if bit {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out), nil
}
