package huffman

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Bits is an immutable sequence of bits with an exact bit length.  Bits are
// packed MSB-first and the padding in the last byte is always zero, which is
// also how they are laid out on the wire.  Use BitWriter to build one.
//
// The zero value is an empty sequence.
type Bits struct {
	data []byte
	size uint64
}

// MakeBits constructs Bits holding the first size bits of data.  Padding bits
// past size are ignored.
func MakeBits(size uint64, data []byte) Bits {
	n := byteLen(size)
	assert.Assertf(uint64(len(data)) >= n, "%d bits need %d bytes, got %d", size, n, len(data))
	out := Bits{data: make([]byte, n), size: size}
	copy(out.data, data)
	if n != 0 {
		out.data[n-1] &= tailMask(size)
	}
	return out
}

// ParseBits parses a string of '0' and '1' characters.
func ParseBits(str string) (Bits, error) {
	bw := NewBitWriter()
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			bw.WriteBit(false)
		case '1':
			bw.WriteBit(true)
		default:
			return Bits{}, fmt.Errorf("huffman: invalid bit %q at offset %d", str[i], i)
		}
	}
	return bw.Bits(), nil
}

// Len returns the number of bits.
func (b Bits) Len() uint64 {
	return b.size
}

// At returns the i'th bit.
func (b Bits) At(i uint64) bool {
	assert.Assertf(i < b.size, "bit index %d out of range [0..%d)", i, b.size)
	return b.data[i>>3]&(0x80>>(i&7)) != 0
}

// Bytes returns a copy of the packed bits, zero-padded to a whole byte.
func (b Bits) Bytes() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// Equal reports whether b and other hold the same bits.
func (b Bits) Equal(other Bits) bool {
	return b.size == other.size && bytes.Equal(b.data, other.data)
}

// String returns the bits as a string of '0' and '1' characters.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(int(b.size))
	for i := uint64(0); i < b.size; i++ {
		if b.At(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

var _ fmt.Stringer = Bits{}

// BitWriter accumulates bits MSB-first and produces Bits.
type BitWriter struct {
	buf  bytes.Buffer
	w    *bitio.Writer
	size uint64
}

// NewBitWriter returns an empty BitWriter.
func NewBitWriter() *BitWriter {
	bw := &BitWriter{}
	bw.w = bitio.NewWriter(&bw.buf)
	return bw
}

// WriteBit adds one bit.
func (bw *BitWriter) WriteBit(bit bool) {
	bw.w.TryWriteBool(bit)
	bw.size++
}

// WriteCode adds all bits of hc.
func (bw *BitWriter) WriteCode(hc Code) {
	size := int(hc.Size)
	for i := 0; i < size; i += 8 {
		n := uint8(8)
		if rem := size - i; rem < 8 {
			n = uint8(rem)
		}
		bw.w.TryWriteBits(uint64(hc.Bits[i>>3]>>(8-n)), n)
	}
	bw.size += uint64(hc.Size)
}

// WriteBits adds all bits of b.
func (bw *BitWriter) WriteBits(b Bits) {
	full := b.size >> 3
	bw.w.TryWrite(b.data[:full])
	if rem := uint8(b.size & 7); rem != 0 {
		bw.w.TryWriteBits(uint64(b.data[full]>>(8-rem)), rem)
	}
	bw.size += b.size
}

// Len returns the number of bits written so far.
func (bw *BitWriter) Len() uint64 {
	return bw.size
}

// Bits flushes the writer and returns everything written.  The BitWriter
// must not be used afterwards.
func (bw *BitWriter) Bits() Bits {
	err := bw.w.Close()
	if err == nil {
		err = bw.w.TryError
	}
	// bytes.Buffer never fails a write
	assert.Assertf(err == nil, "bitio: %v", err)
	return Bits{data: bw.buf.Bytes(), size: bw.size}
}
