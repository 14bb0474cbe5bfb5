// Package huffman implements a static, byte-oriented Huffman codec.  The
// code is built from a single frequency count of the whole input, and the
// tree that produced it travels alongside the payload as a list of leaf
// symbols plus a handful of "shape" bits, so no code lengths need to be
// transmitted separately.
//
// Typical use:
//
//     fd, err := huffman.Encode(data)
//     ...
//     out, err := huffman.Decode(fd)
//
// FileData can be persisted with MarshalBinary or WriteTo; see wire.go for
// the exact layout.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
