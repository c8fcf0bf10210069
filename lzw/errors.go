package lzw

import (
	"errors"
)

// ErrCorruptCodeword is returned when a codeword refers to a dictionary
// entry that does not exist yet.
var ErrCorruptCodeword = errors.New("lzw: corrupt codeword")
