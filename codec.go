package bitzip

import (
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chronos-tachyon/bitzip/huffman"
	"github.com/chronos-tachyon/bitzip/lzw"
)

// Codec is the capability shared by every compression scheme.
//
// Compress reads src to the end and writes the compressed form to dst.
// Expand does the reverse.  Neither closes its arguments.  FileSuffix
// returns the suffix, including the leading dot, that marks files produced
// by Compress.
//
type Codec interface {
	Compress(dst io.Writer, src io.Reader) error
	Expand(dst io.Writer, src io.Reader) error
	FileSuffix() string
}

var (
	_ Codec = huffman.Codec{}
	_ Codec = lzw.Codec{}
)

var registry = map[string]Codec{
	"huffman": huffman.Codec{},
	"lzw":     lzw.Codec{},
}

// Lookup returns the codec registered under name: "huffman" or "lzw".
func Lookup(name string) (Codec, bool) {
	c, ok := registry[strings.ToLower(name)]
	return c, ok
}

// Names returns the registered codec names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ForPath returns the codec whose suffix ends path, if any.
func ForPath(path string) (Codec, bool) {
	for _, name := range Names() {
		c := registry[name]
		if hasSuffix(path, c.FileSuffix()) {
			return c, true
		}
	}
	return nil, false
}

// hasSuffix reports whether the last element of path ends in suffix and
// has something before it.
func hasSuffix(path, suffix string) bool {
	base := filepath.Base(path)
	return len(base) > len(suffix) && strings.HasSuffix(base, suffix)
}
