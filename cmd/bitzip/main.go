// Command bitzip compresses or expands files with the Huffman or LZW codec.
//
// Each argument is a file name or a doublestar glob ("logs/**/*.txt").
// Every matching file is processed on its own: compressing foo writes
// foo.huf (or foo.lzw), expanding foo.huf writes foo.
//
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/chronos-tachyon/bitzip"
)

func main() {
	logger := log.New(os.Stderr, "[bitzip] ", log.LstdFlags)
	os.Exit(run(os.Args[1:], os.Stderr, logger))
}

func run(args []string, stderr io.Writer, logger *log.Logger) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		logger.Printf("%v", err)
		return 2
	}

	paths, err := expandPatterns(cfg.Patterns)
	if err != nil {
		logger.Printf("%v", err)
		return 2
	}

	failed := 0
	for _, path := range paths {
		if cfg.skip(path) {
			if cfg.Verbose {
				logger.Printf("%s: already compressed, skipping", path)
			}
			continue
		}
		if err := process(cfg, path, logger); err != nil {
			logger.Printf("%s: %v", path, err)
			failed++
		}
	}
	if failed != 0 {
		logger.Printf("%d of %d files failed", failed, len(paths))
		return 1
	}
	return 0
}

// expandPatterns resolves every pattern to the regular files it matches,
// sorted and without duplicates.  A pattern that matches nothing is an
// error.
func expandPatterns(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%q matches no files", pattern)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func process(cfg *Config, path string, logger *log.Logger) error {
	c, err := cfg.codecFor(path)
	if err != nil {
		return err
	}

	var res bitzip.Result
	if cfg.Expand {
		res, err = bitzip.ExpandFile(c, path)
	} else {
		res, err = bitzip.CompressFile(c, path)
	}
	if err != nil {
		return err
	}
	logger.Printf("%s (%.1f%%)", res, 100*res.Ratio())

	if cfg.Verify {
		return verify(c, res, cfg.Verbose, logger)
	}
	return nil
}
