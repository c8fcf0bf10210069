// Package huffman implements a Huffman codec for byte streams.
//
// A compressed stream holds the code tree itself, serialized in pre-order
// (a 1 bit followed by an 8-bit symbol for a leaf, a 0 bit followed by the
// left and right subtrees for an internal node), then the number of
// encoded symbols as a 32-bit big-endian integer, then the code of every
// symbol, most significant bit first.  The final byte is zero-padded.
//
// Tree construction is deterministic: compressing the same input twice
// yields identical output.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     Sedgewick & Wayne, "Algorithms", 4th ed., Section 5.5
//
package huffman
