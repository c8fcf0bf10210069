package huffman

import (
	"errors"
)

// ErrCorruptTrie is returned when a serialized code tree cannot describe a
// valid Huffman tree, or when decoding walks into an invalid node.
var ErrCorruptTrie = errors.New("huffman: corrupt trie")
