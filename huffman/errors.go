package huffman

import (
	"errors"
)

var (
	// ErrEmptyInput is returned when there are no symbols to build a tree
	// from.
	ErrEmptyInput = errors.New("huffman: empty input")

	// ErrCorruptTree is returned when the shape bits and the leaf symbol
	// list of a serialized tree disagree.
	ErrCorruptTree = errors.New("huffman: corrupt tree")

	// ErrTruncatedStream is returned when a payload ends in the middle of a
	// codeword, or when serialized FileData ends early.
	ErrTruncatedStream = errors.New("huffman: truncated stream")

	// ErrUnknownSymbol is returned when a byte has no codeword in the table.
	ErrUnknownSymbol = errors.New("huffman: unknown symbol")
)
