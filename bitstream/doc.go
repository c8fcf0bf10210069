// Package bitstream implements bit-granular readers and writers on top of
// byte-oriented sources and sinks.
//
// Bits are packed most-significant-first: the first bit written to a
// Writer becomes the high bit of the first byte emitted.  Multi-bit values
// are written and read big-endian.  A Writer pads its final partial byte
// with zero bits when it is flushed.
//
// A Reader detects the end of its source by lookahead (IsEmpty), so callers
// that consume a stream of unknown length loop on IsEmpty before each read.
// Reading past the end is always an error (ErrExhausted), because for the
// formats built on this package it means the input was truncated.
//
package bitstream
