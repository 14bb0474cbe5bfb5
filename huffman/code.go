package huffman

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Code represents a codeword: the path from the root of a tree to one of its
// leaves, 0 for "go left" and 1 for "go right".
//
// Code is comparable and is used directly as a map key, so every bit past
// Size is kept at zero.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant bit
	// of Bits[0] is the first bit.
	Bits [(maxBitsPerCode + 7) / 8]byte
}

// MakeCode is a convenience function that constructs a Code of up to 64 bits.
// The most significant of the size low-order bits of bits is the first bit,
// so MakeCode(3, 0x1) is "001".
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= 64, "size %d > 64", size)
	var hc Code
	for i := byte(0); i < size; i++ {
		hc = hc.Append((bits>>(size-1-i))&1 != 0)
	}
	return hc
}

// Bit returns the i'th bit of this Code.
func (hc Code) Bit(i byte) bool {
	assert.Assertf(i < hc.Size, "bit index %d out of range [0..%d)", i, hc.Size)
	return hc.Bits[i>>3]&(0x80>>(i&7)) != 0
}

// Append returns a copy of this Code with one more bit at the end.
func (hc Code) Append(bit bool) Code {
	assert.Assertf(hc.Size < maxBitsPerCode, "code already holds %d bits", hc.Size)
	if bit {
		hc.Bits[hc.Size>>3] |= 0x80 >> (hc.Size & 7)
	}
	hc.Size++
	return hc
}

// Truncate returns the first size bits of this Code.
func (hc Code) Truncate(size byte) Code {
	assert.Assertf(size <= hc.Size, "cannot truncate %d-bit code to %d bits", hc.Size, size)
	for i := size; i < hc.Size; i++ {
		hc.Bits[i>>3] &^= 0x80 >> (i & 7)
	}
	hc.Size = size
	return hc
}

// HasPrefix reports whether prefix is a prefix of this Code.  Every Code is a
// prefix of itself.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Truncate(prefix.Size) == prefix
}

// Compare orders codes by length, then lexicographically by bits.
func (hc Code) Compare(other Code) int {
	switch {
	case hc.Size < other.Size:
		return -1
	case hc.Size > other.Size:
		return 1
	}
	return bytes.Compare(hc.Bits[:], other.Bits[:])
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	var sb strings.Builder
	sb.Grow(int(hc.Size))
	for i := byte(0); i < hc.Size; i++ {
		if hc.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return strconv.Quote(sb.String())
}

var _ fmt.Stringer = Code{}
