package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Encoder maps Symbols to the codewords of a Huffman tree.
type Encoder struct {
	codes    [NumSymbols]Code
	numCodes int
	minSize  byte
	maxSize  byte
}

// Init initializes this Encoder from the given tree.  Each leaf's codeword is
// its path from the root, 0 for left and 1 for right.
//
// If the tree is a single leaf, its symbol is assigned the 1-bit codeword
// "0", since a zero-length codeword could not be told apart by a decoder.
//
func (e *Encoder) Init(t *Tree) {
	assert.Assertf(t != nil, "tree is nil")

	*e = Encoder{}
	if t.IsDegenerate() {
		e.setCode(t.nodes[t.root].symbol, MakeCode(1, 0))
		return
	}

	// path holds the codeword of the most recently entered internal node.
	// A child whose parent sits at depth d keeps the first d bits of path.
	var path Code
	w := newWalker(t)
	for {
		step, ok := w.next()
		if !ok {
			break
		}
		hc := path.Truncate(byte(step.depth)).Append(step.right)
		n := &t.nodes[step.child]
		switch n.kind {
		case leafNode:
			e.setCode(n.symbol, hc)
		case internalNode:
			path = hc
		}
	}
}

// Encode returns the codeword for a Symbol.  The returned Code has a Size of
// 0 if the symbol is not in the code.
func (e *Encoder) Encode(symbol Symbol) Code {
	return e.codes[symbol]
}

// EncodeTo appends the codeword of each byte of data, in order, to dst.  On
// error, dst is left unchanged.
func (e *Encoder) EncodeTo(dst *Bits, data []byte) error {
	for index, b := range data {
		if e.codes[b].Size == 0 {
			return fmt.Errorf("%w: byte %d at offset %d", ErrUnknownSymbol, b, index)
		}
	}
	bw := NewBitWriter()
	bw.WriteBits(*dst)
	for _, b := range data {
		bw.WriteCode(e.codes[b])
	}
	*dst = bw.Bits()
	return nil
}

// NumCodes is the number of symbols with a codeword.
func (e *Encoder) NumCodes() int {
	return e.numCodes
}

// MinSize is the bit length of the shortest legal code.
func (e *Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e *Encoder) MaxSize() byte {
	return e.maxSize
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for symbol := range e.codes {
		hc := e.codes[symbol]
		if hc.Size != 0 {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (e *Encoder) setCode(symbol Symbol, hc Code) {
	assert.Assertf(e.codes[symbol].Size == 0, "symbol %d appears twice in tree", symbol)
	e.codes[symbol] = hc

	size := hc.Size
	if e.numCodes == 0 {
		e.minSize = size
		e.maxSize = size
	} else if e.minSize > size {
		e.minSize = size
	} else if e.maxSize < size {
		e.maxSize = size
	}
	e.numCodes++
}
