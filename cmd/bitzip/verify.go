package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cespare/xxhash/v2"

	"github.com/chronos-tachyon/bitzip"
)

// verify expands res.OutputPath in memory and checks that it hashes to the
// same value as res.InputPath.
func verify(c bitzip.Codec, res bitzip.Result, verbose bool, logger *log.Logger) error {
	want, err := digestFile(res.InputPath)
	if err != nil {
		return err
	}

	f, err := os.Open(res.OutputPath)
	if err != nil {
		return fmt.Errorf("%w: %w", bitzip.ErrIO, err)
	}
	defer f.Close()

	h := xxhash.New()
	if err := c.Expand(h, f); err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	got := h.Sum64()

	if verbose {
		logger.Printf("%s: xxhash %016x, round trip %016x", res.InputPath, want, got)
	}
	if got != want {
		return fmt.Errorf("verify: %s does not expand to its input (xxhash %016x, want %016x)", res.OutputPath, got, want)
	}
	return nil
}

func digestFile(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", bitzip.ErrIO, err)
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, fmt.Errorf("%w: %w", bitzip.ErrIO, err)
	}
	return h.Sum64(), nil
}
