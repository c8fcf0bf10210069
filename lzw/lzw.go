package lzw

import (
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/bitzip/bitstream"
	"github.com/chronos-tachyon/bitzip/tst"
)

const (
	// NumLiterals is the number of single-byte codes.
	NumLiterals = 256

	// Width is the size of a codeword in bits.
	Width = 12

	// MaxCodes is the number of distinct codewords, and so the largest
	// size the dictionary can reach.
	MaxCodes = 1 << Width

	// EOF is the codeword that terminates a stream.
	EOF = NumLiterals

	firstCode = EOF + 1
)

// Suffix is the file name suffix of LZW-compressed files.
const Suffix = ".lzw"

// Stats describes one run of Encode.
type Stats struct {
	// Codewords is the number of codewords written, including EOF.
	Codewords int

	// Entries is the number of strings in the dictionary at the end.  The
	// reserved EOF code is not counted.
	Entries int

	// Frozen is true if the dictionary ran out of codes.
	Frozen bool
}

func literal(b byte) string {
	return string([]byte{b})
}

// Encode writes the LZW encoding of input to w, terminated by EOF.  It does
// not flush w.
func Encode(w *bitstream.Writer, input string) (Stats, error) {
	var dict tst.Trie[int]
	for i := 0; i < NumLiterals; i++ {
		dict.Put(literal(byte(i)), i)
	}

	var stats Stats
	next := firstCode
	for len(input) > 0 {
		key := dict.LongestPrefixOf(input)
		code, found := dict.Get(key)
		assert.Assertf(found, "no dictionary entry for a prefix of %q", input)

		if err := w.WriteBits(uint32(code), Width); err != nil {
			return stats, err
		}
		stats.Codewords++

		t := len(key)
		if t < len(input) && next < MaxCodes {
			dict.Put(input[:t+1], next)
			next++
		}
		input = input[t:]
	}

	if err := w.WriteBits(EOF, Width); err != nil {
		return stats, err
	}
	stats.Codewords++
	stats.Entries = dict.Size()
	stats.Frozen = next == MaxCodes
	return stats, nil
}

// Decode reads LZW codewords from r up to and including EOF, and writes the
// strings they stand for to w.  It does not flush w.
func Decode(w io.StringWriter, r *bitstream.Reader) error {
	var table [MaxCodes]string
	for i := 0; i < NumLiterals; i++ {
		table[i] = literal(byte(i))
	}
	next := firstCode

	codeword, err := r.ReadInt(Width)
	if err != nil {
		return err
	}
	if codeword == EOF {
		return nil
	}
	if codeword >= NumLiterals {
		return fmt.Errorf("%w: stream starts with code %d", ErrCorruptCodeword, codeword)
	}

	val := table[codeword]
	for {
		if _, err := w.WriteString(val); err != nil {
			return err
		}

		codeword, err = r.ReadInt(Width)
		if err != nil {
			return err
		}
		if codeword == EOF {
			return nil
		}

		var s string
		switch {
		case int(codeword) < next:
			s = table[codeword]
		case int(codeword) == next:
			// The encoder used an entry in the same step that created it.
			s = val + val[:1]
		default:
			return fmt.Errorf("%w: code %d with only %d codes defined", ErrCorruptCodeword, codeword, next)
		}

		if next < MaxCodes {
			table[next] = val + s[:1]
			next++
		}
		val = s
	}
}

// Codec compresses and expands byte streams with LZW coding.
//
// Codec holds no state; every call creates its own bit streams.
type Codec struct{}

// FileSuffix returns ".lzw".
func (Codec) FileSuffix() string {
	return Suffix
}

// Compress reads all of src and writes its LZW encoding to dst.
func (Codec) Compress(dst io.Writer, src io.Reader) error {
	in := bitstream.NewReader(src)
	out := bitstream.NewWriter(dst)

	data, err := in.ReadString()
	if err != nil {
		return fmt.Errorf("lzw: reading input: %w", err)
	}
	if _, err := Encode(out, data); err != nil {
		return fmt.Errorf("lzw: writing codewords: %w", err)
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("lzw: flushing output: %w", err)
	}
	return nil
}

// Expand reads an LZW encoding from src and writes the original bytes to
// dst.
func (Codec) Expand(dst io.Writer, src io.Reader) error {
	in := bitstream.NewReader(src)
	out := bitstream.NewWriter(dst)

	if err := Decode(out, in); err != nil {
		return fmt.Errorf("lzw: decoding: %w", err)
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("lzw: flushing output: %w", err)
	}
	return nil
}
