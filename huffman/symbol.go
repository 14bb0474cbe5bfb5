package huffman

// Symbol represents one byte of input.
type Symbol byte

// NumSymbols is the size of the alphabet.
const NumSymbols = 256

// maxBitsPerCode is the longest codeword a tree over NumSymbols leaves can
// produce.
const maxBitsPerCode = NumSymbols - 1
