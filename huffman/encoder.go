package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/bitzip/bitstream"
)

// Encoder maps symbols to the codes assigned by a Huffman tree.
type Encoder struct {
	codes   [NumSymbols]Code
	present [NumSymbols]bool
	minSize byte
	maxSize byte
}

// Init initializes this Encoder from a tree.  Codes are derived by a
// pre-order walk of the tree that appends a 0 bit on each left descent and
// a 1 bit on each right descent; a leaf's accumulated path is its code.
// Only leaves carry symbols, so the resulting code is prefix-free.
//
func (e *Encoder) Init(t *Tree) {
	*e = Encoder{}
	first := true
	t.walk(func(symbol byte, path []byte) {
		hc := codeFromPath(path)
		e.codes[symbol] = hc
		e.present[symbol] = true
		if first {
			first = false
			e.minSize = hc.Size
			e.maxSize = hc.Size
		} else if e.minSize > hc.Size {
			e.minSize = hc.Size
		} else if e.maxSize < hc.Size {
			e.maxSize = hc.Size
		}
	})
}

// codeFromPath converts a walk path to a Code.  Trees built from counts of
// at most 2^32-1 symbols are far shallower than a Code can hold.
func codeFromPath(path []byte) Code {
	var hc Code
	for _, c := range path {
		hc = hc.Append(c == '1')
	}
	return hc
}

// Encode returns the code for a symbol.  The second result is false if the
// tree has no leaf for symbol.
func (e *Encoder) Encode(symbol byte) (Code, bool) {
	return e.codes[symbol], e.present[symbol]
}

// Write writes the code for symbol to w, one bit at a time.  The only leaf
// of a single-leaf tree has an empty code, so nothing is written for it.
func (e *Encoder) Write(w *bitstream.Writer, symbol byte) error {
	hc, ok := e.Encode(symbol)
	if !ok {
		return fmt.Errorf("%w: symbol %d has no code", bitstream.ErrInvalidArgument, symbol)
	}
	for i := byte(0); i < hc.Size; i++ {
		if err := w.WriteBit(hc.Bit(i)); err != nil {
			return err
		}
	}
	return nil
}

// MinSize is the bit length of the shortest code.
func (e *Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest code.
func (e *Encoder) MaxSize() byte {
	return e.maxSize
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.  Symbols without a code are omitted.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if e.present[symbol] {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, e.codes[symbol])
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
