package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/chronos-tachyon/assert"
)

type nodeKind byte

const (
	leafNode nodeKind = iota
	internalNode
)

// node is one entry in a Tree's arena.  Leaves use symbol; internal nodes
// use left and right, which are indices into the same arena.
type node struct {
	kind   nodeKind
	symbol Symbol
	left   int
	right  int
	weight uint64
}

// Tree is a full binary Huffman tree.  Nodes live in a flat arena and refer
// to their children by index; every node except the root has exactly one
// parent.  A Tree is never modified after construction.
type Tree struct {
	nodes []node
	root  int
}

// BuildTree constructs the Huffman tree for the given frequencies.
//
// Ties are broken deterministically: among entries of equal weight, leaves
// come first in ascending symbol order, followed by internal nodes in the
// order they were created.  Of the two entries merged at each step, the
// first one becomes the left child.
//
// If exactly one symbol has a non-zero count, the tree is a bare leaf.
//
func BuildTree(freq *Frequencies) (*Tree, error) {
	numLeaves := freq.Distinct()
	if numLeaves == 0 {
		return nil, ErrEmptyInput
	}

	t := &Tree{nodes: make([]node, 0, 2*numLeaves-1)}
	h := freqHeap{list: make([]weightAndOrder, 0, numLeaves)}
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if count := freq[symbol]; count != 0 {
			index := t.addLeaf(Symbol(symbol), count)
			h.list = append(h.list, weightAndOrder{index, count, uint32(symbol)})
		}
	}
	h.Init()

	nextOrder := uint32(NumSymbols)
	for h.Len() > 1 {
		a := heap.Pop(&h).(weightAndOrder)
		b := heap.Pop(&h).(weightAndOrder)

		// Compute weight using saturating addition
		weight := a.weight + b.weight
		if weight < a.weight {
			weight = math.MaxUint64
		}

		index := t.addInternal(a.index, b.index, weight)
		heap.Push(&h, weightAndOrder{index, weight, nextOrder})
		nextOrder++
	}

	t.root = heap.Pop(&h).(weightAndOrder).index
	return t, nil
}

// NumLeaves returns the number of distinct symbols in the tree.
func (t *Tree) NumLeaves() int {
	// A full binary tree with n leaves has n-1 internal nodes.
	return (len(t.nodes) + 1) / 2
}

// IsDegenerate reports whether the tree is a single leaf.
func (t *Tree) IsDegenerate() bool {
	return t.nodes[t.root].kind == leafNode
}

// Weight returns the total weight of the tree, i.e. the length of the input
// it was built from.  Trees rebuilt by DeserializeTree carry no weights.
func (t *Tree) Weight() uint64 {
	return t.nodes[t.root].weight
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	type dumpItem struct {
		index int
		depth int
	}

	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	stack := []dumpItem{{t.root, 1}}
	for len(stack) != 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &t.nodes[item.index]
		buf.WriteString(strings.Repeat("\t", item.depth))
		switch n.kind {
		case leafNode:
			fmt.Fprintf(&buf, "Leaf(%d) weight=%d\n", n.symbol, n.weight)
		case internalNode:
			fmt.Fprintf(&buf, "Internal weight=%d\n", n.weight)
			stack = append(stack, dumpItem{n.right, item.depth + 1})
			stack = append(stack, dumpItem{n.left, item.depth + 1})
		default:
			assert.Assertf(false, "unknown node kind %d", n.kind)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (t *Tree) addLeaf(symbol Symbol, weight uint64) int {
	t.nodes = append(t.nodes, node{kind: leafNode, symbol: symbol, weight: weight})
	return len(t.nodes) - 1
}

func (t *Tree) addInternal(left int, right int, weight uint64) int {
	t.nodes = append(t.nodes, node{kind: internalNode, left: left, right: right, weight: weight})
	return len(t.nodes) - 1
}

// type edge + type walker {{{

// edge is one step of a depth-first walk: the move from an internal node to
// one of its children.
type edge struct {
	child int
	right bool

	// depth is the depth of the parent; the root is at depth 0.
	depth int
}

// walker visits the edges of a Tree depth-first, left before right, using an
// explicit stack instead of recursion.  A degenerate tree has no edges.
//
// We use walkItem.x to keep track of where we are in the tree walk:
//   x=0 → We just arrived at walkItem for the first time
//   x=1 → We have already processed the left child
//   x=2 → We have already processed both children
//
type walker struct {
	t     *Tree
	stack []walkItem
}

type walkItem struct {
	index int
	x     byte
}

func newWalker(t *Tree) *walker {
	w := &walker{t: t, stack: make([]walkItem, 0, log2uint32(uint32(len(t.nodes)))+1)}
	if !t.IsDegenerate() {
		w.stack = append(w.stack, walkItem{index: t.root})
	}
	return w
}

func (w *walker) next() (edge, bool) {
	for len(w.stack) != 0 {
		top := &w.stack[len(w.stack)-1]
		x := top.x
		top.x++

		var e edge
		switch x {
		case 0:
			e = edge{child: w.t.nodes[top.index].left, right: false}
		case 1:
			e = edge{child: w.t.nodes[top.index].right, right: true}
		default:
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		e.depth = len(w.stack) - 1

		switch w.t.nodes[e.child].kind {
		case leafNode:
			// leaves are never pushed
		case internalNode:
			w.stack = append(w.stack, walkItem{index: e.child})
		default:
			assert.Assertf(false, "unknown node kind %d", w.t.nodes[e.child].kind)
		}
		return e, true
	}
	return edge{}, false
}

// }}}

// type weightAndOrder + type freqHeap {{{

type weightAndOrder struct {
	index  int
	weight uint64
	order  uint32
}

type freqHeap struct {
	list []weightAndOrder
}

func (h *freqHeap) Init() {
	heap.Init(h)
}

func (h *freqHeap) Len() int {
	return len(h.list)
}

func (h *freqHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *freqHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.order < b.order
}

func (h *freqHeap) Push(x interface{}) {
	h.list = append(h.list, x.(weightAndOrder))
}

func (h *freqHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*freqHeap)(nil)

// }}}
