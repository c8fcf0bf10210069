package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/bitzip"
)

// Config holds the command-line settings.
type Config struct {
	// Codec names the scheme to use.  Empty means "huffman" when
	// compressing, and "pick by file suffix" when expanding.
	Codec string

	// Expand selects expansion instead of compression.
	Expand bool

	// Verify expands every freshly compressed file in memory and compares
	// its digest with the original's.
	Verify bool

	// Verbose logs bit counts and digests for each file.
	Verbose bool

	// Patterns are the file arguments.  Each may be a doublestar glob.
	Patterns []string
}

// DefaultConfig returns a Config that compresses with Huffman coding.
func DefaultConfig() *Config {
	return &Config{}
}

func parseFlags(args []string, stderr io.Writer) (*Config, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet("bitzip", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Codec, "codec", cfg.Codec, "codec to use: "+strings.Join(bitzip.Names(), ", "))
	fs.BoolVar(&cfg.Expand, "d", cfg.Expand, "expand instead of compress")
	fs.BoolVar(&cfg.Verify, "verify", cfg.Verify, "after compressing, check that the output expands to the input")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log details for each file")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: bitzip [-codec name] [-d] [-verify] [-v] file-or-glob...\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.Patterns = fs.Args()

	if len(cfg.Patterns) == 0 {
		fs.Usage()
		return nil, fmt.Errorf("no files given")
	}
	if cfg.Codec != "" {
		if _, ok := bitzip.Lookup(cfg.Codec); !ok {
			return nil, fmt.Errorf("unknown codec %q (have %s)", cfg.Codec, strings.Join(bitzip.Names(), ", "))
		}
	}
	if cfg.Verify && cfg.Expand {
		return nil, fmt.Errorf("-verify applies to compression only")
	}
	return cfg, nil
}

// codecFor picks the codec for one file.
func (cfg *Config) codecFor(path string) (bitzip.Codec, error) {
	if cfg.Codec != "" {
		c, _ := bitzip.Lookup(cfg.Codec)
		return c, nil
	}
	if !cfg.Expand {
		c, _ := bitzip.Lookup("huffman")
		return c, nil
	}
	c, ok := bitzip.ForPath(path)
	if !ok {
		return nil, fmt.Errorf("%w: %q has no known suffix", bitzip.ErrSuffixMismatch, path)
	}
	return c, nil
}

// skip reports whether path should be left alone: when compressing without
// an explicit -codec, files that already carry a codec suffix are not
// compressed a second time.
func (cfg *Config) skip(path string) bool {
	if cfg.Expand || cfg.Codec != "" {
		return false
	}
	_, ok := bitzip.ForPath(path)
	return ok
}
