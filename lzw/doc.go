// Package lzw implements LZW compression with fixed-width 12-bit codewords.
//
// Codes 0 through 255 stand for the single bytes, code 256 marks the end of
// the stream, and codes from 257 up are assigned to longer strings as they
// are first seen.  When all 4096 codes are in use the dictionary stops
// growing and the rest of the input is encoded with the entries it already
// has.
//
// The encoder keeps its dictionary in a ternary search trie so that the
// longest known prefix of the remaining input can be found in one descent.
// The decoder rebuilds the same dictionary as a flat table, one step behind
// the encoder.
//
package lzw
