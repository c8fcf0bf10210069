package huffman

import (
	"container/heap"
	"fmt"

	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/bitzip/bitstream"
)

// Tree is a Huffman code tree.  Every internal node has exactly two
// children; a tree built for a single distinct symbol is one leaf.
//
// Nodes are stored in an arena and refer to their children by index.  The
// arena is owned by the Tree and never shared.
//
type Tree struct {
	nodes []node
	root  int32
}

type node struct {
	freq   uint64
	left   int32
	right  int32
	symbol byte
}

const noChild = int32(-1)

func (n node) isLeaf() bool {
	return n.left == noChild
}

// BuildTree builds a Huffman tree from a frequency table.
//
// Leaves are queued in ascending symbol order.  Nodes are dequeued by
// ascending frequency, and nodes of equal frequency in the order they were
// queued, so a given table always yields the same tree.  The first node
// dequeued of each pair becomes the left child.
//
// A table with no non-zero entries (empty input) yields a single leaf for
// symbol 0 with frequency 0.
//
func BuildTree(freq *Frequencies) *Tree {
	distinct := freq.Distinct()
	t := &Tree{nodes: make([]node, 0, maxNodes(distinct))}

	if distinct == 0 {
		t.root = t.addLeaf(0, 0)
		return t
	}

	h := freqHeap{tree: t}
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if f := freq[symbol]; f != 0 {
			h.list = append(h.list, t.addLeaf(byte(symbol), f))
		}
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(int32)
		b := heap.Pop(&h).(int32)
		heap.Push(&h, t.addInternal(a, b))
	}

	t.root = heap.Pop(&h).(int32)
	return t
}

func (t *Tree) addLeaf(symbol byte, freq uint64) int32 {
	t.nodes = append(t.nodes, node{freq: freq, left: noChild, right: noChild, symbol: symbol})
	return int32(len(t.nodes) - 1)
}

func (t *Tree) addInternal(left, right int32) int32 {
	t.nodes = append(t.nodes, node{
		freq:  t.nodes[left].freq + t.nodes[right].freq,
		left:  left,
		right: right,
	})
	return int32(len(t.nodes) - 1)
}

func (t *Tree) at(i int32) node {
	assert.Assertf(i >= 0 && int(i) < len(t.nodes), "node index %d out of range [0, %d)", i, len(t.nodes))
	return t.nodes[i]
}

// Leaves returns the number of leaves, i.e. the number of distinct symbols
// the tree can encode.
func (t *Tree) Leaves() int {
	var n int
	for _, x := range t.nodes {
		if x.isLeaf() {
			n++
		}
	}
	return n
}

// Freq returns the combined frequency stored at the root.  Trees read back
// from a stream carry no frequencies, so this is 0 for them.
func (t *Tree) Freq() uint64 {
	return t.at(t.root).freq
}

// walk visits the leaves in pre-order, passing each one's path from the
// root as a string of '0' and '1' bytes.  The path is only valid during the
// call to fn.  Paths are not limited in length, so trees read from a stream
// can be walked whatever their depth.
func (t *Tree) walk(fn func(symbol byte, path []byte)) {
	var path []byte
	var visit func(i int32)
	visit = func(i int32) {
		x := t.at(i)
		if x.isLeaf() {
			fn(x.symbol, path)
			return
		}
		assert.Assertf(x.right != noChild, "internal node %d has no right child", i)
		path = append(path, '0')
		visit(x.left)
		path[len(path)-1] = '1'
		visit(x.right)
		path = path[:len(path)-1]
	}
	visit(t.root)
}

// Write serializes the tree in pre-order: a leaf is a 1 bit followed by
// its 8-bit symbol, an internal node is a 0 bit followed by its left
// subtree and then its right subtree.
func (t *Tree) Write(w *bitstream.Writer) error {
	var write func(i int32) error
	write = func(i int32) error {
		x := t.at(i)
		if x.isLeaf() {
			if err := w.WriteBit(true); err != nil {
				return err
			}
			return w.WriteByte(x.symbol)
		}
		if err := w.WriteBit(false); err != nil {
			return err
		}
		if err := write(x.left); err != nil {
			return err
		}
		return write(x.right)
	}
	return write(t.root)
}

// ReadTree deserializes a tree written by Tree.Write.
//
// A valid tree has at most NumSymbols leaves, each with a different
// symbol.  Streams that violate this fail with ErrCorruptTrie before the
// recursion can grow without bound.
//
func ReadTree(r *bitstream.Reader) (*Tree, error) {
	t := &Tree{nodes: make([]node, 0, maxNodes(NumSymbols))}
	var seen [NumSymbols]bool
	var internals int

	var read func() (int32, error)
	read = func() (int32, error) {
		isLeaf, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if isLeaf {
			symbol, err := r.ReadByte()
			if err != nil {
				return 0, err
			}
			if seen[symbol] {
				return 0, fmt.Errorf("%w: symbol %d appears twice", ErrCorruptTrie, symbol)
			}
			seen[symbol] = true
			return t.addLeaf(symbol, 0), nil
		}

		internals++
		if internals >= NumSymbols {
			return 0, fmt.Errorf("%w: more than %d internal nodes", ErrCorruptTrie, NumSymbols-1)
		}
		left, err := read()
		if err != nil {
			return 0, err
		}
		right, err := read()
		if err != nil {
			return 0, err
		}
		return t.addInternal(left, right), nil
	}

	root, err := read()
	if err != nil {
		return nil, err
	}
	t.root = root
	return t, nil
}

// type freqHeap {{{

type freqHeap struct {
	tree *Tree
	list []int32
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

// Less orders by frequency, then by arena index.  Arena indices grow in
// the order nodes are created, which is also the order they are queued.
func (h *freqHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	af, bf := h.tree.nodes[a].freq, h.tree.nodes[b].freq
	if af != bf {
		return af < bf
	}
	return a < b
}

func (h *freqHeap) Push(x interface{}) {
	h.list = append(h.list, x.(int32))
}

func (h *freqHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*freqHeap)(nil)

// }}}
