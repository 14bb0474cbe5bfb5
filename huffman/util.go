package huffman

import (
	mathbits "math/bits"
)

func log2uint32(x uint32) uint32 {
	if x == 0 {
		x = 1
	}
	return uint32(32 - mathbits.LeadingZeros32(x))
}

// byteLen returns the number of bytes needed to hold size bits.
func byteLen(size uint64) uint64 {
	n := size >> 3
	if size&7 != 0 {
		n++
	}
	return n
}

// tailMask returns the mask of valid bits in the last byte of a region
// holding size bits.
func tailMask(size uint64) byte {
	if rem := size & 7; rem != 0 {
		return byte(0xff << (8 - rem))
	}
	return 0xff
}
