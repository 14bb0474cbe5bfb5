package huffman

import (
	"runtime"
)

// parallelCountThreshold is the input length above which Encode counts
// frequencies on all available CPUs.
const parallelCountThreshold = 1 << 20

// FileData is the complete output of Encode: the tree's leaf symbols, the
// tree's shape bits, and the encoded payload.
type FileData struct {
	// Symbols lists the leaves of the tree in depth-first order.
	Symbols []byte

	// Shape describes the branching of the tree; see Tree.Serialize.
	Shape Bits

	// Payload holds the concatenated codewords of the input.
	Payload Bits
}

// Encode builds the Huffman code for data and encodes data with it.  It
// returns ErrEmptyInput if data is empty.
func Encode(data []byte) (FileData, error) {
	var freq Frequencies
	if len(data) > parallelCountThreshold {
		freq = CountFrequenciesParallel(data, runtime.GOMAXPROCS(0))
	} else {
		freq = CountFrequencies(data)
	}
	t, err := BuildTree(&freq)
	if err != nil {
		return FileData{}, err
	}

	var e Encoder
	e.Init(t)

	var payload Bits
	if err := e.EncodeTo(&payload, data); err != nil {
		return FileData{}, err
	}

	symbols, shape := t.Serialize()
	return FileData{
		Symbols: symbols,
		Shape:   shape,
		Payload: payload,
	}, nil
}

// Decode reverses Encode.  It returns ErrCorruptTree if the symbols and shape
// bits do not describe a tree, and ErrTruncatedStream if the payload does not
// end on a codeword boundary.
func Decode(fd FileData) ([]byte, error) {
	t, err := DeserializeTree(fd.Symbols, fd.Shape)
	if err != nil {
		return nil, err
	}

	var d Decoder
	d.Init(t)
	return d.DecodeBits(fd.Payload)
}
