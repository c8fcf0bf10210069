package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/chronos-tachyon/bitzip/bitstream"
)

// Decoder decodes symbols by walking a Huffman tree, one input bit per
// edge: 0 goes left, 1 goes right.
type Decoder struct {
	tree *Tree
}

// Init initializes this Decoder to walk the given tree.
func (d *Decoder) Init(t *Tree) {
	*d = Decoder{tree: t}
}

// Decode reads bits from r until they spell out the code of a leaf, and
// returns that leaf's symbol.  If the root is itself a leaf, its symbol is
// returned without consuming any bits.
func (d *Decoder) Decode(r *bitstream.Reader) (byte, error) {
	nodes := d.tree.nodes
	i := d.tree.root
	for {
		if i < 0 || int(i) >= len(nodes) {
			return 0, fmt.Errorf("%w: node index %d out of range", ErrCorruptTrie, i)
		}
		x := nodes[i]
		if x.isLeaf() {
			return x.symbol, nil
		}
		if x.right == noChild {
			return 0, fmt.Errorf("%w: internal node %d has one child", ErrCorruptTrie, i)
		}
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if bit {
			i = x.right
		} else {
			i = x.left
		}
	}
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	type entry struct {
		path   string
		symbol byte
	}

	var entries []entry
	d.tree.walk(func(symbol byte, path []byte) {
		entries = append(entries, entry{string(path), symbol})
	})
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].path, entries[j].path
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return a < b
	})

	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tLeaves() = %d\n", len(entries))
	for _, e := range entries {
		fmt.Fprintf(&buf, "\tDecode(%s) = %d\n", strconv.Quote(e.path), e.symbol)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
