package huffman

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Code represents a sequence of bits, i.e. a path from the root of a code
// tree to one of its leaves.  A 0 bit is a step to the left child, a 1 bit is
// a step to the right child.
type Code struct {
	// Size holds the number of valid bits.
	Size int

	// packed holds the bits, first bit in the most significant bit of
	// packed[0].  Unused trailing bits are always zero.
	packed []byte
}

// ParseCode is a convenience function that constructs a Code from a string of
// '0' and '1' characters.
func ParseCode(str string) (Code, error) {
	var hc Code
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, errors.Errorf("invalid character %q at index %d of Huffman code %q", str[i], i, str)
		}
	}
	return hc, nil
}

// Bit returns the i'th bit of the code, 0 or 1.
func (hc Code) Bit(i int) byte {
	if i < 0 || i >= hc.Size {
		panic(fmt.Errorf("bit index %d out of range [0, %d)", i, hc.Size))
	}
	return (hc.packed[i>>3] >> (7 - uint(i&7))) & 1
}

// Append returns a new Code consisting of this Code's bits followed by bit.
// The receiver is not modified.
func (hc Code) Append(bit byte) Code {
	out := Code{Size: hc.Size + 1, packed: make([]byte, (hc.Size+8)>>3)}
	copy(out.packed, hc.packed)
	if bit != 0 {
		out.packed[hc.Size>>3] |= 0x80 >> uint(hc.Size&7)
	}
	return out
}

// HasPrefix returns true iff the first prefix.Size bits of this Code are
// equal to prefix.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	for i := 0; i < prefix.Size; i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// Equal returns true iff both Codes hold the same sequence of bits.
func (hc Code) Equal(other Code) bool {
	return hc.Size == other.Size && hc.HasPrefix(other)
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	var buf strings.Builder
	buf.Grow(hc.Size)
	for i := 0; i < hc.Size; i++ {
		buf.WriteByte('0' + hc.Bit(i))
	}
	return strconv.Quote(buf.String())
}

var _ fmt.Stringer = Code{}

// writeTo emits the code's bits, whole bytes at a time where possible.
func (hc Code) writeTo(sink *bitSink) error {
	full := hc.Size >> 3
	for i := 0; i < full; i++ {
		if err := sink.writeBits(8, uint64(hc.packed[i])); err != nil {
			return err
		}
	}
	if rem := uint(hc.Size & 7); rem != 0 {
		return sink.writeBits(rem, uint64(hc.packed[full]>>(8-rem)))
	}
	return nil
}
