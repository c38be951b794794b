package hufio

import (
	"bytes"
	"testing"

	"github.com/Samreen555/huffman"
)

func TestPackUnpack(t *testing.T) {
	streams := []string{
		"",
		"0",
		"1",
		"01001100100111",
		"111111111",  // 9 bits, crosses a byte boundary
		"00000000",   // exactly one byte
		"101010101010101010101",
	}
	for _, stream := range streams {
		t.Run(stream, func(t *testing.T) {
			data, nbits, err := Pack(stream)
			if err != nil {
				t.Fatalf("Pack failed: %v", err)
			}
			if nbits != len(stream) {
				t.Errorf("Pack returned %d bits, want %d", nbits, len(stream))
			}
			if want := (len(stream) + 7) / 8; len(data) != want {
				t.Errorf("packed to %d bytes, want %d", len(data), want)
			}
			got, err := Unpack(data, nbits)
			if err != nil {
				t.Fatalf("Unpack failed: %v", err)
			}
			if got != stream {
				t.Errorf("round trip:\n\texpect: %s\n\tactual: %s", stream, got)
			}
		})
	}
}

func TestPack_BitOrder(t *testing.T) {
	// First bit lands in the most significant position.
	data, _, err := Pack("10000000")
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	if !bytes.Equal(data, []byte{0x80}) {
		t.Errorf("packed bytes = %#v, want [0x80]", data)
	}
}

func TestPack_InvalidBit(t *testing.T) {
	if _, _, err := Pack("01x"); err == nil {
		t.Error("expected an error for a non-bit byte")
	}
}

func TestUnpack_NotEnoughData(t *testing.T) {
	if _, err := Unpack([]byte{0xff}, 9); err == nil {
		t.Error("expected an error for more bits than data")
	}
}

func TestPack_EncodedStream(t *testing.T) {
	c, err := huffman.New("the quick brown fox jumps over the lazy dog")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	data, nbits, err := Pack(c.Encoded())
	if err != nil {
		t.Fatalf("Pack failed: %v", err)
	}
	stream, err := Unpack(data, nbits)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	out, err := c.Decode(stream)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if out != c.Input() {
		t.Errorf("packed round trip:\n\texpect: %q\n\tactual: %q", c.Input(), out)
	}
}
