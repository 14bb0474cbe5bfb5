package huffman

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// FileData is stored as three length-prefixed regions.  All integers are
// big-endian; bit regions are packed MSB-first and zero-padded to a whole
// byte, so the explicit bit counts are what tell padding from data.
//
//     [u32 leaf_count]        [leaf_count bytes: Symbols]
//     [u32 shape_bit_count]   [ceil(shape_bit_count/8) bytes: Shape]
//     [u64 payload_bit_count] [ceil(payload_bit_count/8) bytes: Payload]
//

// MarshalBinary encodes FileData in the layout above.
func (fd FileData) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(4 + len(fd.Symbols) + 4 + int(byteLen(fd.Shape.Len())) + 8 + int(byteLen(fd.Payload.Len())))

	w := bitio.NewWriter(&buf)
	w.TryWriteBits(uint64(len(fd.Symbols)), 32)
	w.TryWrite(fd.Symbols)
	w.TryWriteBits(fd.Shape.Len(), 32)
	w.TryWrite(fd.Shape.Bytes())
	w.TryWriteBits(fd.Payload.Len(), 64)
	w.TryWrite(fd.Payload.Bytes())
	if w.TryError != nil {
		return nil, w.TryError
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes FileData in the layout above.  The input must
// contain exactly one FileData and nothing else.
func (fd *FileData) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	var tmp FileData
	if _, err := tmp.ReadFrom(r); err != nil {
		return err
	}
	if extra := r.Len(); extra != 0 {
		return fmt.Errorf("huffman: %d trailing bytes after FileData", extra)
	}
	*fd = tmp
	return nil
}

// WriteTo writes FileData to w in the layout above.
func (fd FileData) WriteTo(w io.Writer) (int64, error) {
	raw, err := fd.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(raw)
	return int64(n), err
}

// ReadFrom reads one FileData from r in the layout above.  It never reads
// past the end of the FileData, so several can be stored back to back.
func (fd *FileData) ReadFrom(r io.Reader) (int64, error) {
	cr := &countingReader{r: r}
	br := bitio.NewReader(cr)

	leafCount, err := br.ReadBits(32)
	if err != nil {
		return cr.n, wireError("leaf count", err)
	}
	if leafCount > NumSymbols {
		return cr.n, fmt.Errorf("%w: leaf count %d, max %d", ErrCorruptTree, leafCount, NumSymbols)
	}
	symbols := make([]byte, leafCount)
	if _, err := io.ReadFull(br, symbols); err != nil {
		return cr.n, wireError("leaf symbols", err)
	}

	shapeCount, err := br.ReadBits(32)
	if err != nil {
		return cr.n, wireError("shape bit count", err)
	}
	if shapeCount > maxShapeBits {
		return cr.n, fmt.Errorf("%w: shape bit count %d, max %d", ErrCorruptTree, shapeCount, maxShapeBits)
	}
	shape := make([]byte, byteLen(shapeCount))
	if _, err := io.ReadFull(br, shape); err != nil {
		return cr.n, wireError("shape bits", err)
	}

	payloadCount, err := br.ReadBits(64)
	if err != nil {
		return cr.n, wireError("payload bit count", err)
	}
	// The payload length comes from the input, so let the buffer grow with
	// the bytes that actually arrive rather than trusting it up front.
	var payload bytes.Buffer
	if _, err := io.CopyN(&payload, br, int64(byteLen(payloadCount))); err != nil {
		return cr.n, wireError("payload bits", err)
	}

	*fd = FileData{
		Symbols: symbols,
		Shape:   MakeBits(shapeCount, shape),
		Payload: MakeBits(payloadCount, payload.Bytes()),
	}
	return cr.n, nil
}

func wireError(field string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: reading %s: %w", ErrTruncatedStream, field, io.ErrUnexpectedEOF)
	}
	return fmt.Errorf("huffman: reading %s: %w", field, err)
}

// countingReader reads one byte at a time when asked for a byte, so that
// bitio never buffers beyond what it consumes.
type countingReader struct {
	r   io.Reader
	n   int64
	one [1]byte
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}

func (cr *countingReader) ReadByte() (byte, error) {
	n, err := io.ReadFull(cr.r, cr.one[:])
	cr.n += int64(n)
	if err != nil {
		return 0, err
	}
	return cr.one[0], nil
}

var (
	_ encoding.BinaryMarshaler   = FileData{}
	_ encoding.BinaryUnmarshaler = (*FileData)(nil)
	_ io.WriterTo                = FileData{}
	_ io.ReaderFrom              = (*FileData)(nil)
	_ io.ByteReader              = (*countingReader)(nil)
)
