package bitstream

import (
	"bufio"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Writer writes individual bits and fixed-width big-endian values to an
// underlying io.Writer.
//
// Errors from the sink are sticky: once a write fails, every later call
// returns the same error.  Argument errors are not sticky, and a call that
// fails with ErrInvalidArgument writes nothing.
//
type Writer struct {
	dst  io.Writer
	bw   *bufio.Writer
	bits *bitio.Writer
	pos  int64
	err  error
}

// NewWriter returns a Writer that emits to dst.  If dst is already a
// *bufio.Writer it is used directly.
func NewWriter(dst io.Writer) *Writer {
	bw, ok := dst.(*bufio.Writer)
	if !ok {
		bw = bufio.NewWriter(dst)
	}
	return &Writer{
		dst:  dst,
		bw:   bw,
		bits: bitio.NewWriter(bw),
	}
}

// BitsWritten returns the number of bits written so far, including any
// padding added by Flush.
func (w *Writer) BitsWritten() int64 {
	return w.pos
}

func (w *Writer) aligned() bool {
	return w.pos%8 == 0
}

// WriteBit writes a single bit.
func (w *Writer) WriteBit(bit bool) error {
	if w.err != nil {
		return w.err
	}
	if err := w.bits.WriteBool(bit); err != nil {
		w.err = err
		return err
	}
	w.pos++
	return nil
}

// WriteByte writes the 8 bits of b.
func (w *Writer) WriteByte(b byte) error {
	if w.err != nil {
		return w.err
	}
	var err error
	if w.aligned() {
		err = w.bw.WriteByte(b)
	} else {
		err = w.bits.WriteBits(uint64(b), 8)
	}
	if err != nil {
		w.err = err
		return err
	}
	w.pos += 8
	return nil
}

// WriteInt writes all 32 bits of x, big-endian.
func (w *Writer) WriteInt(x uint32) error {
	for shift := 24; shift >= 0; shift -= 8 {
		if err := w.WriteByte(byte(x >> uint(shift))); err != nil {
			return err
		}
	}
	return nil
}

// WriteBits writes the low width bits of x, 1 <= width <= 32.  The value
// must fit in width bits.
func (w *Writer) WriteBits(x uint32, width int) error {
	if width < 1 || width > 32 {
		return fmt.Errorf("%w: int width %d not in [1, 32]", ErrInvalidArgument, width)
	}
	if width == 32 {
		return w.WriteInt(x)
	}
	if x >= uint32(1)<<uint(width) {
		return fmt.Errorf("%w: value %d does not fit in %d bits", ErrInvalidArgument, x, width)
	}
	return w.writeBits(uint64(x), uint8(width))
}

// WriteChar writes the low width bits of c, 1 <= width <= 16.  The value
// must fit in width bits.
func (w *Writer) WriteChar(c uint16, width int) error {
	if width < 1 || width > 16 {
		return fmt.Errorf("%w: char width %d not in [1, 16]", ErrInvalidArgument, width)
	}
	if uint32(c) >= uint32(1)<<uint(width) {
		return fmt.Errorf("%w: illegal %d-bit char %d", ErrInvalidArgument, width, c)
	}
	if width == 8 {
		return w.WriteByte(byte(c))
	}
	return w.writeBits(uint64(c), uint8(width))
}

// WriteString writes every byte of s.
func (w *Writer) WriteString(s string) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	if w.aligned() {
		n, err := w.bw.WriteString(s)
		w.pos += 8 * int64(n)
		if err != nil {
			w.err = err
		}
		return n, err
	}
	for i := 0; i < len(s); i++ {
		if err := w.WriteByte(s[i]); err != nil {
			return i, err
		}
	}
	return len(s), nil
}

// Flush pads any partial byte with zero bits, emits it, and flushes the
// sink's buffer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	skipped, err := w.bits.Align()
	if err != nil {
		w.err = err
		return err
	}
	w.pos += int64(skipped)
	assert.Assertf(w.aligned(), "Writer not aligned after padding: pos=%d", w.pos)
	if err := w.bw.Flush(); err != nil {
		w.err = err
		return err
	}
	return nil
}

// Close flushes the Writer and then closes the sink if it implements
// io.Closer.  The sink is closed even when the flush fails.
func (w *Writer) Close() error {
	err := w.Flush()
	if c, ok := w.dst.(io.Closer); ok {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func (w *Writer) writeBits(u uint64, n uint8) error {
	if w.err != nil {
		return w.err
	}
	if err := w.bits.WriteBits(u, n); err != nil {
		w.err = err
		return err
	}
	w.pos += int64(n)
	return nil
}

var _ io.ByteWriter = (*Writer)(nil)
var _ io.StringWriter = (*Writer)(nil)
