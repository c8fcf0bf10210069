package bitzip

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Result describes one completed file operation.
type Result struct {
	InputPath  string
	OutputPath string
	InputSize  int64
	OutputSize int64
}

// Ratio returns OutputSize / InputSize, or 0 for an empty input.
func (r Result) Ratio() float64 {
	if r.InputSize == 0 {
		return 0
	}
	return float64(r.OutputSize) / float64(r.InputSize)
}

// String returns the string representation of this Result.
func (r Result) String() string {
	return fmt.Sprintf("%s (%d bytes) -> %s (%d bytes)", r.InputPath, r.InputSize, r.OutputPath, r.OutputSize)
}

var _ fmt.Stringer = Result{}

// CompressFile compresses the file at path into path+c.FileSuffix().
//
// The output is written to a temporary file and renamed into place on
// success.  On failure the temporary file is removed, and any file that
// already existed at the output path is left untouched.
//
func CompressFile(c Codec, path string) (Result, error) {
	return transform(path, path+c.FileSuffix(), c.Compress)
}

// ExpandFile expands the file at path, which must end in c.FileSuffix(),
// into the same path without the suffix.
//
// If the suffix is missing, ExpandFile fails with ErrSuffixMismatch before
// opening any file.  On any other failure nothing is written, and a file
// already at the output path is left untouched.
//
func ExpandFile(c Codec, path string) (Result, error) {
	suffix := c.FileSuffix()
	if !hasSuffix(path, suffix) {
		return Result{InputPath: path}, fmt.Errorf("%w: %q does not end in %q", ErrSuffixMismatch, path, suffix)
	}
	return transform(path, strings.TrimSuffix(path, suffix), c.Expand)
}

// transform runs fn from inPath into a temporary file in the directory of
// outPath, and renames it onto outPath only once fn and the close have
// succeeded.  A file already at outPath is left alone on failure.
func transform(inPath, outPath string, fn func(io.Writer, io.Reader) error) (result Result, err error) {
	result = Result{InputPath: inPath, OutputPath: outPath}

	in, err := os.Open(inPath)
	if err != nil {
		return result, ioError(err)
	}
	defer in.Close()

	fi, err := in.Stat()
	if err != nil {
		return result, ioError(err)
	}
	result.InputSize = fi.Size()

	dir, base := filepath.Split(outPath)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return result, ioError(err)
	}
	tmpPath := tmp.Name()
	closed := false
	defer func() {
		if !closed {
			_ = tmp.Close()
		}
		if err != nil {
			_ = os.Remove(tmpPath)
			result.OutputSize = 0
		}
	}()

	if err = fn(tmp, in); err != nil {
		return result, ioError(err)
	}

	fi, err = tmp.Stat()
	if err != nil {
		return result, ioError(err)
	}
	result.OutputSize = fi.Size()

	closed = true
	if err = tmp.Close(); err != nil {
		return result, ioError(err)
	}
	if err = os.Chmod(tmpPath, outputMode(outPath)); err != nil {
		return result, ioError(err)
	}
	if err = os.Rename(tmpPath, outPath); err != nil {
		return result, ioError(err)
	}
	return result, nil
}

// outputMode keeps the permissions of a file being replaced.  New files
// get 0644; CreateTemp would otherwise leave them at 0600.
func outputMode(path string) fs.FileMode {
	if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
		return fi.Mode().Perm()
	}
	return 0o644
}

// ioError tags filesystem failures with ErrIO.  Errors that are not
// filesystem failures are returned unchanged.
func ioError(err error) error {
	var pe *fs.PathError
	var le *os.LinkError
	if (errors.As(err, &pe) || errors.As(err, &le)) && !errors.Is(err, ErrIO) {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return err
}
