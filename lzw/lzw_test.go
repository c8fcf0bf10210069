package lzw

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/chronos-tachyon/bitzip/bitstream"
)

func encode(t *testing.T, input string) ([]byte, Stats) {
	t.Helper()
	var buf bytes.Buffer
	w := bitstream.NewWriter(&buf)
	stats, err := Encode(w, input)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	return buf.Bytes(), stats
}

func codewords(t *testing.T, compressed []byte) []uint32 {
	t.Helper()
	r := bitstream.NewReader(bytes.NewReader(compressed))
	var out []uint32
	for {
		codeword, err := r.ReadInt(Width)
		if err != nil {
			t.Fatalf("ReadInt failed after %d codewords: %v", len(out), err)
		}
		out = append(out, codeword)
		if codeword == EOF {
			return out
		}
	}
}

func pack(codes ...uint32) []byte {
	var buf bytes.Buffer
	w := bitstream.NewWriter(&buf)
	for _, code := range codes {
		_ = w.WriteBits(code, Width)
	}
	_ = w.Flush()
	return buf.Bytes()
}

func roundTrip(t *testing.T, input []byte) []byte {
	t.Helper()
	var compressed, expanded bytes.Buffer
	if err := (Codec{}).Compress(&compressed, bytes.NewReader(input)); err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if err := (Codec{}).Expand(&expanded, &compressed); err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	return expanded.Bytes()
}

func TestEncode_RepeatedByte(t *testing.T) {
	compressed, stats := encode(t, "AAAAAA")

	expect := []byte{0x04, 0x11, 0x01, 0x10, 0x21, 0x00}
	if !bytes.Equal(expect, compressed) {
		t.Errorf("wrong output:\n\texpect: %#v\n\tactual: %#v", expect, compressed)
	}

	expectCodes := []uint32{'A', 257, 258, EOF}
	actualCodes := codewords(t, compressed)
	if !slices.Equal(expectCodes, actualCodes) {
		t.Errorf("wrong codewords:\n\texpect: %v\n\tactual: %v", expectCodes, actualCodes)
	}
	if stats.Codewords != 4 {
		t.Errorf("expected 4 codewords, got %d", stats.Codewords)
	}
	if stats.Entries != NumLiterals+2 {
		t.Errorf("expected %d entries, got %d", NumLiterals+2, stats.Entries)
	}

	if actual := string(roundTrip(t, []byte("AAAAAA"))); actual != "AAAAAA" {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", "AAAAAA", actual)
	}
}

func TestEncode_Classic(t *testing.T) {
	// Sedgewick & Wayne's example.
	compressed, _ := encode(t, "ABRACADABRABRABRA")
	expect := []uint32{'A', 'B', 'R', 'A', 'C', 'A', 'D', 257, 259, 258, 264, 'A', EOF}
	actual := codewords(t, compressed)
	if !slices.Equal(expect, actual) {
		t.Errorf("wrong codewords:\n\texpect: %v\n\tactual: %v", expect, actual)
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(4, 4))
	random := make([]byte, 20000)
	for i := range random {
		random[i] = byte(rng.IntN(256))
	}

	type testRow struct {
		name  string
		input []byte
	}

	testData := [...]testRow{
		{"empty", nil},
		{"single byte", []byte{'q'}},
		{"high bytes", []byte{0xff, 0x80, 0xff, 0x80, 0xff, 0x80, 0x00}},
		{"identical bytes", bytes.Repeat([]byte{'z'}, 5000)},
		{"text", []byte(strings.Repeat("to be or not to be, that is the question. ", 50))},
		{"random", random},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual := roundTrip(t, row.input)
			if !bytes.Equal(row.input, actual) {
				t.Errorf("round trip mismatch: %d bytes in, %d bytes out", len(row.input), len(actual))
			}
		})
	}
}

func TestEncode_DictionaryFreezes(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	input := make([]byte, 30000)
	for i := range input {
		input[i] = byte(rng.IntN(256))
	}

	_, stats := encode(t, string(input))
	if !stats.Frozen {
		t.Fatal("expected the dictionary to fill up")
	}
	if stats.Entries > MaxCodes {
		t.Errorf("dictionary grew to %d entries, limit %d", stats.Entries, MaxCodes)
	}
	if stats.Entries != MaxCodes-1 {
		t.Errorf("expected %d entries, got %d", MaxCodes-1, stats.Entries)
	}

	if actual := roundTrip(t, input); !bytes.Equal(input, actual) {
		t.Error("round trip mismatch after the dictionary froze")
	}
}

func TestCodec_Empty(t *testing.T) {
	compressed, stats := encode(t, "")
	if !bytes.Equal(compressed, []byte{0x10, 0x00}) {
		t.Errorf("expected a lone EOF codeword, got %#v", compressed)
	}
	if stats.Codewords != 1 {
		t.Errorf("expected 1 codeword, got %d", stats.Codewords)
	}
}

func TestDecode_Corrupt(t *testing.T) {
	type testRow struct {
		name   string
		input  []byte
		expect error
	}

	testData := [...]testRow{
		{"no data", nil, bitstream.ErrExhausted},
		{"missing EOF", pack('A'), bitstream.ErrExhausted},
		{"starts past literals", pack(300, EOF), ErrCorruptCodeword},
		{"starts with first free code", pack(257, EOF), ErrCorruptCodeword},
		{"code from the future", pack('A', 'B', 400, EOF), ErrCorruptCodeword},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := (Codec{}).Expand(&buf, bytes.NewReader(row.input))
			if !errors.Is(err, row.expect) {
				t.Errorf("expected %v, got %v", row.expect, err)
			}
		})
	}
}

func TestCodec_FileSuffix(t *testing.T) {
	if actual := (Codec{}).FileSuffix(); actual != ".lzw" {
		t.Errorf("expected \".lzw\", got %q", actual)
	}
}
