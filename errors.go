package bitzip

import (
	"errors"

	"github.com/chronos-tachyon/bitzip/bitstream"
	"github.com/chronos-tachyon/bitzip/huffman"
	"github.com/chronos-tachyon/bitzip/lzw"
)

var (
	// ErrExhausted means the compressed input ended too early.
	ErrExhausted = bitstream.ErrExhausted

	// ErrInvalidArgument means a value did not fit its declared width.
	ErrInvalidArgument = bitstream.ErrInvalidArgument

	// ErrCorruptTrie means a Huffman file holds an invalid code tree.
	ErrCorruptTrie = huffman.ErrCorruptTrie

	// ErrCorruptCodeword means an LZW file refers to an undefined code.
	ErrCorruptCodeword = lzw.ErrCorruptCodeword

	// ErrIO means a file could not be opened, read, written or closed.  It
	// is always joined with the underlying error.
	ErrIO = errors.New("bitzip: I/O failure")

	// ErrSuffixMismatch means ExpandFile was given a path that does not end
	// in the codec's suffix.  Nothing is written in that case.
	ErrSuffixMismatch = errors.New("bitzip: wrong file suffix")
)
