// Package bitzip compresses and expands files with one of two independent
// codecs: Huffman coding (suffix ".huf") and LZW coding (suffix ".lzw").
//
// Both codecs implement the Codec interface.  CompressFile writes
// path+suffix next to the input; ExpandFile strips the suffix again and
// refuses to run on a path without it.  Either reports the sizes of the
// input and output files so a caller can display them.
//
// Failures are classified by sentinel errors that can be matched with
// errors.Is: ErrExhausted, ErrInvalidArgument, ErrCorruptTrie,
// ErrCorruptCodeword, ErrIO and ErrSuffixMismatch.
//
// The bitzip command in cmd/bitzip runs either codec over files and globs.
//
package bitzip
