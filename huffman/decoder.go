package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/icza/bitio"
)

// Decoder maps the codewords of a Huffman tree back to Symbols.
type Decoder struct {
	table   map[Code]Symbol
	minSize byte
	maxSize byte
}

// Init initializes this Decoder from the given tree, typically one rebuilt by
// DeserializeTree.  The decode table is the inverse of the table Encoder.Init
// derives from the same tree.
func (d *Decoder) Init(t *Tree) {
	var e Encoder
	e.Init(t)

	// len(table) is exactly the number of leaves.
	*d = Decoder{
		table:   make(map[Code]Symbol, e.NumCodes()),
		minSize: e.MinSize(),
		maxSize: e.MaxSize(),
	}
	for symbol := range e.codes {
		if hc := e.codes[symbol]; hc.Size != 0 {
			d.table[hc] = Symbol(symbol)
		}
	}
}

// Decode looks up a single codeword.  The boolean is false if hc is not a
// complete codeword of this code.
func (d *Decoder) Decode(hc Code) (Symbol, bool) {
	symbol, found := d.table[hc]
	return symbol, found
}

// DecodeBits decodes a whole payload.  Bits are accumulated one at a time
// until they form a codeword, at which point its symbol is emitted and the
// accumulator starts over.  Because the code is prefix-free, no lookahead or
// backtracking is needed.
//
// If the payload ends with a non-empty accumulator, or contains a bit
// sequence that is not a codeword, DecodeBits returns ErrTruncatedStream and
// no output.
//
func (d *Decoder) DecodeBits(payload Bits) ([]byte, error) {
	n := payload.Len()
	var out []byte
	if d.minSize != 0 {
		out = make([]byte, 0, n/uint64(d.maxSize))
	}

	r := bitio.NewReader(bytes.NewReader(payload.data))
	var acc Code
	for i := uint64(0); i < n; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return nil, fmt.Errorf("huffman: reading payload bit %d: %w", i, err)
		}
		acc = acc.Append(bit)
		if symbol, found := d.table[acc]; found {
			out = append(out, byte(symbol))
			acc = Code{}
			continue
		}
		// Only the degenerate 1-bit code has paths that lead nowhere.
		if acc.Size >= d.maxSize {
			return nil, fmt.Errorf("%w: no codeword matches %s at offset %d", ErrTruncatedStream, acc, i+1-uint64(acc.Size))
		}
	}

	if acc.Size != 0 {
		return nil, fmt.Errorf("%w: %d dangling bits %s", ErrTruncatedStream, acc.Size, acc)
	}
	return out, nil
}

// MinSize is the bit length of the shortest legal code.
func (d *Decoder) MinSize() byte {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d *Decoder) MaxSize() byte {
	return d.maxSize
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	keys := make(byCode, 0, len(d.table))
	for hc := range d.table {
		keys = append(keys, hc)
	}
	keys.Sort()
	for _, hc := range keys {
		fmt.Fprintf(&buf, "\tDecode(%s) = %d\n", hc, d.table[hc])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	return list[i].Compare(list[j]) < 0
}

var _ sort.Interface = byCode(nil)

// }}}
