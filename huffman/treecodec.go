package huffman

import (
	"fmt"
)

// maxShapeBits is the number of shape bits produced by a tree with
// NumSymbols leaves.
const maxShapeBits = 2 * (NumSymbols - 1)

// Serialize returns the tree's leaf symbols in depth-first order, plus the
// shape bits that describe its branching: each internal node contributes a 0
// before its left subtree and a 1 before its right subtree.  A tree with k
// leaves yields 2×(k−1) shape bits; the degenerate one-leaf tree yields none.
func (t *Tree) Serialize() (symbols []byte, shape Bits) {
	symbols = make([]byte, 0, t.NumLeaves())
	if t.IsDegenerate() {
		symbols = append(symbols, byte(t.nodes[t.root].symbol))
		return symbols, shape
	}

	bw := NewBitWriter()
	w := newWalker(t)
	for {
		e, ok := w.next()
		if !ok {
			break
		}
		bw.WriteBit(e.right)
		if n := &t.nodes[e.child]; n.kind == leafNode {
			symbols = append(symbols, byte(n.symbol))
		}
	}
	return symbols, bw.Bits()
}

// DeserializeTree rebuilds a Tree from the output of Serialize.  Leaves are
// taken from symbols strictly in order.  The resulting Tree carries no
// weights.
func DeserializeTree(symbols []byte, shape Bits) (*Tree, error) {
	numSymbols := len(symbols)
	numBits := shape.Len()
	if numSymbols == 0 {
		return nil, fmt.Errorf("%w: no leaf symbols", ErrCorruptTree)
	}
	if numSymbols > NumSymbols {
		return nil, fmt.Errorf("%w: %d leaf symbols, max %d", ErrCorruptTree, numSymbols, NumSymbols)
	}
	if numBits > maxShapeBits {
		return nil, fmt.Errorf("%w: %d shape bits, max %d", ErrCorruptTree, numBits, maxShapeBits)
	}

	var seen [NumSymbols]bool
	for _, symbol := range symbols {
		if seen[symbol] {
			return nil, fmt.Errorf("%w: duplicate leaf symbol %d", ErrCorruptTree, symbol)
		}
		seen[symbol] = true
	}

	// Each frame is an internal node whose children are still being
	// filled in.  right is false while the left slot is open.
	type frame struct {
		index int
		right bool
	}

	t := &Tree{nodes: make([]node, 0, 2*numSymbols-1)}
	stack := make([]frame, 0, log2uint32(uint32(numSymbols))+1)
	var pos uint64
	var nextSymbol int

	for {
		// Open a subtree: every 0 bit starts an internal node and descends
		// into its left slot; anything else means the slot holds a leaf.
		for pos < numBits && !shape.At(pos) {
			pos++
			stack = append(stack, frame{index: t.addInternal(-1, -1, 0)})
		}
		if nextSymbol >= numSymbols {
			return nil, fmt.Errorf("%w: ran out of leaf symbols after %d", ErrCorruptTree, numSymbols)
		}
		completed := t.addLeaf(Symbol(symbols[nextSymbol]), 0)
		nextSymbol++

		// Close subtrees: a completed right slot finishes its parent, which
		// in turn fills the slot above it.
		for len(stack) != 0 && stack[len(stack)-1].right {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			t.nodes[top.index].right = completed
			completed = top.index
		}

		if len(stack) == 0 {
			t.root = completed
			break
		}

		// A completed left slot must be followed by the 1 bit that moves
		// to the right slot.  The opening loop stopped either at that 1
		// bit or at the end of the shape.
		top := &stack[len(stack)-1]
		t.nodes[top.index].left = completed
		if pos >= numBits {
			return nil, fmt.Errorf("%w: shape bits ended with %d open nodes", ErrCorruptTree, len(stack))
		}
		pos++
		top.right = true
	}

	if pos != numBits {
		return nil, fmt.Errorf("%w: %d unused shape bits", ErrCorruptTree, numBits-pos)
	}
	if nextSymbol != numSymbols {
		return nil, fmt.Errorf("%w: %d unused leaf symbols", ErrCorruptTree, numSymbols-nextSymbol)
	}
	return t, nil
}
