package huffman

import (
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/bitzip/bitstream"
)

// Suffix is the file name suffix of Huffman-compressed files.
const Suffix = ".huf"

// Codec compresses and expands byte streams with Huffman coding.
//
// Codec holds no state: every call creates its own bit streams, so a
// single Codec may be used for any number of calls, including concurrent
// ones on different streams.
//
type Codec struct{}

// FileSuffix returns ".huf".
func (Codec) FileSuffix() string {
	return Suffix
}

// Compress reads all of src and writes its Huffman encoding to dst.
func (Codec) Compress(dst io.Writer, src io.Reader) error {
	in := bitstream.NewReader(src)
	out := bitstream.NewWriter(dst)

	data, err := in.ReadString()
	if err != nil {
		return fmt.Errorf("huffman: reading input: %w", err)
	}
	if uint64(len(data)) > math.MaxUint32 {
		return fmt.Errorf("%w: input of %d bytes does not fit a 32-bit symbol count", bitstream.ErrInvalidArgument, len(data))
	}

	var freq Frequencies
	freq.Tally(data)
	tree := BuildTree(&freq)

	var e Encoder
	e.Init(tree)

	if err := tree.Write(out); err != nil {
		return fmt.Errorf("huffman: writing trie: %w", err)
	}
	if err := out.WriteInt(uint32(len(data))); err != nil {
		return fmt.Errorf("huffman: writing symbol count: %w", err)
	}
	for i := 0; i < len(data); i++ {
		if err := e.Write(out, data[i]); err != nil {
			return fmt.Errorf("huffman: writing symbol %d: %w", i, err)
		}
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("huffman: flushing output: %w", err)
	}
	return nil
}

// Expand reads a Huffman encoding from src and writes the original bytes
// to dst.
func (Codec) Expand(dst io.Writer, src io.Reader) error {
	in := bitstream.NewReader(src)
	out := bitstream.NewWriter(dst)

	tree, err := ReadTree(in)
	if err != nil {
		return fmt.Errorf("huffman: reading trie: %w", err)
	}
	count, err := in.ReadInt(32)
	if err != nil {
		return fmt.Errorf("huffman: reading symbol count: %w", err)
	}

	var d Decoder
	d.Init(tree)
	for i := uint32(0); i < count; i++ {
		symbol, err := d.Decode(in)
		if err != nil {
			return fmt.Errorf("huffman: decoding symbol %d of %d: %w", i, count, err)
		}
		if err := out.WriteByte(symbol); err != nil {
			return fmt.Errorf("huffman: writing output: %w", err)
		}
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("huffman: flushing output: %w", err)
	}
	return nil
}
