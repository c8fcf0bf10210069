package bitstream

import (
	"errors"
)

// ErrExhausted is returned when a read asks for more bits than remain in
// the source.  It indicates truncated or corrupted input.
var ErrExhausted = errors.New("bitstream: input exhausted")

// ErrInvalidArgument is returned when a bit width is outside the range an
// operation supports, or when a value does not fit in its declared width.
var ErrInvalidArgument = errors.New("bitstream: invalid argument")
