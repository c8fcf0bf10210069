package huffman

import (
	"strings"
	"testing"
)

func makeTestTree() *Tree {
	var freq Frequencies
	copy(freq[:], []uint64{5, 9, 12, 13, 16, 45})
	return BuildTree(&freq)
}

func TestEncoder(t *testing.T) {
	var e Encoder
	e.Init(makeTestTree())

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(0) = \"1100\"\n",
		"\tEncode(1) = \"1101\"\n",
		"\tEncode(2) = \"100\"\n",
		"\tEncode(3) = \"101\"\n",
		"\tEncode(4) = \"111\"\n",
		"\tEncode(5) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if _, ok := e.Encode(6); ok {
		t.Errorf("expected no code for symbol 6")
	}
}

func TestEncoder_PrefixFree(t *testing.T) {
	var freq Frequencies
	freq.Tally(strings.Repeat("it was the best of times, it was the worst of times; ", 7))
	freq.Tally("\x00\xff")

	var e Encoder
	e.Init(BuildTree(&freq))

	var codes []Code
	for symbol := 0; symbol < NumSymbols; symbol++ {
		hc, ok := e.Encode(byte(symbol))
		if ok != (freq[symbol] != 0) {
			t.Errorf("symbol %d: expected present=%v, got %v", symbol, freq[symbol] != 0, ok)
		}
		if ok {
			codes = append(codes, hc)
		}
	}

	for i, a := range codes {
		for j, b := range codes {
			if i != j && a.IsPrefixOf(b) {
				t.Errorf("code %s is a prefix of code %s", a, b)
			}
		}
	}
}

func TestEncoder_SingleSymbol(t *testing.T) {
	var freq Frequencies
	freq['z'] = 17

	tree := BuildTree(&freq)
	if tree.Leaves() != 1 {
		t.Fatalf("expected 1 leaf, got %d", tree.Leaves())
	}

	var e Encoder
	e.Init(tree)
	hc, ok := e.Encode('z')
	if !ok || hc.Size != 0 {
		t.Errorf("expected empty code for the only symbol, got %s, %v", hc, ok)
	}
}

func TestCode_String(t *testing.T) {
	type testRow struct {
		hc     Code
		expect string
	}

	testData := [...]testRow{
		{Code{}, "\"\""},
		{MakeCode(1, 0), "\"0\""},
		{MakeCode(3, 0x4), "\"100\""},
		{Code{}.Append(true).Append(false).Append(true), "\"101\""},
		{MakeCode(5, 0x3), "\"00011\""},
	}
	for _, row := range testData {
		t.Run(row.expect, func(t *testing.T) {
			actual := row.hc.String()
			if row.expect != actual {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
		})
	}
}
