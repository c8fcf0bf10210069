package bitstream

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Reader reads individual bits and fixed-width big-endian values from an
// underlying io.Reader.
//
// The bit-level extraction is delegated to bitio.Reader, which never
// fetches a byte before it is needed.  That lets Reader derive the number of
// buffered bits from its own position counter and use the bufio.Reader
// underneath for lookahead and for byte-aligned fast paths.
//
type Reader struct {
	src  io.Reader
	br   *bufio.Reader
	bits *bitio.Reader
	pos  int64
	err  error
}

// NewReader returns a Reader that consumes src.  If src is already a
// *bufio.Reader it is used directly.
func NewReader(src io.Reader) *Reader {
	br, ok := src.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(src)
	}
	return &Reader{
		src:  src,
		br:   br,
		bits: bitio.NewReader(br),
	}
}

// BitsRead returns the number of bits consumed so far.
func (r *Reader) BitsRead() int64 {
	return r.pos
}

// buffered returns the number of unread bits left over from the last byte
// fetched from the source, in [0, 8).
func (r *Reader) buffered() uint8 {
	return uint8((8 - r.pos%8) % 8)
}

// IsEmpty reports whether every bit of the source has been consumed.  An
// I/O failure while looking ahead also reports true; the failure is
// returned by the next read.
func (r *Reader) IsEmpty() bool {
	if r.err != nil {
		return true
	}
	if r.buffered() != 0 {
		return false
	}
	if _, err := r.br.Peek(1); err != nil {
		if err != io.EOF {
			r.err = err
		}
		return true
	}
	return false
}

// ReadBit reads a single bit.
func (r *Reader) ReadBit() (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	bit, err := r.bits.ReadBool()
	if err != nil {
		return false, r.fail(err)
	}
	r.pos++
	return bit, nil
}

// ReadByte reads the next 8 bits as a byte.  When no partial byte is
// buffered, the byte is taken straight from the source.
func (r *Reader) ReadByte() (byte, error) {
	if r.err != nil {
		return 0, r.err
	}

	var b byte
	var err error
	if r.buffered() == 0 {
		b, err = r.br.ReadByte()
	} else {
		var u uint64
		u, err = r.bits.ReadBits(8)
		b = byte(u)
	}
	if err != nil {
		return 0, r.fail(err)
	}
	r.pos += 8
	return b, nil
}

// ReadChar reads the next width bits, 1 <= width <= 16, as an unsigned
// value.
func (r *Reader) ReadChar(width int) (uint16, error) {
	if width < 1 || width > 16 {
		return 0, fmt.Errorf("%w: char width %d not in [1, 16]", ErrInvalidArgument, width)
	}
	if width == 8 {
		b, err := r.ReadByte()
		return uint16(b), err
	}
	u, err := r.readBits(uint8(width))
	return uint16(u), err
}

// ReadInt reads the next width bits, 1 <= width <= 32, as an unsigned
// big-endian value.
func (r *Reader) ReadInt(width int) (uint32, error) {
	if width < 1 || width > 32 {
		return 0, fmt.Errorf("%w: int width %d not in [1, 32]", ErrInvalidArgument, width)
	}
	if width == 32 {
		var x uint32
		for i := 0; i < 4; i++ {
			b, err := r.ReadByte()
			if err != nil {
				return 0, err
			}
			x = (x << 8) | uint32(b)
		}
		return x, nil
	}
	u, err := r.readBits(uint8(width))
	return uint32(u), err
}

// ReadString reads every remaining whole byte of the source.  When the
// stream is not byte-aligned, trailing bits that do not form a whole byte
// are treated as padding and discarded.  An empty remainder yields "".
func (r *Reader) ReadString() (string, error) {
	if r.err != nil {
		return "", r.err
	}

	var sb strings.Builder
	if r.buffered() == 0 {
		n, err := io.Copy(&sb, r.br)
		r.pos += 8 * n
		if err != nil {
			return "", r.fail(err)
		}
		return sb.String(), nil
	}

	for {
		if _, err := r.br.Peek(1); err != nil {
			if err != io.EOF {
				return "", r.fail(err)
			}
			break
		}
		b, err := r.ReadByte()
		if err != nil {
			return "", err
		}
		sb.WriteByte(b)
	}
	if _, err := r.readBits(r.buffered()); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Close closes the source if it implements io.Closer.
func (r *Reader) Close() error {
	if c, ok := r.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (r *Reader) readBits(n uint8) (uint64, error) {
	assert.Assertf(n >= 1 && n <= 32, "readBits width %d out of range", n)
	if r.err != nil {
		return 0, r.err
	}
	u, err := r.bits.ReadBits(n)
	if err != nil {
		return 0, r.fail(err)
	}
	r.pos += int64(n)
	return u, nil
}

func (r *Reader) fail(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w after %d bits", ErrExhausted, r.pos)
	}
	r.err = err
	return err
}

var _ io.ByteReader = (*Reader)(nil)
