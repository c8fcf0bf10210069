package huffman

// NumSymbols is the size of the alphabet: every byte value is a symbol.
const NumSymbols = 256

// Frequencies holds the number of occurrences of each symbol.
type Frequencies [NumSymbols]uint64

// Tally adds one occurrence of each byte of data.
func (f *Frequencies) Tally(data string) {
	for i := 0; i < len(data); i++ {
		f[data[i]]++
	}
}

// Distinct returns the number of symbols with a non-zero frequency.
func (f *Frequencies) Distinct() int {
	var n int
	for _, freq := range f {
		if freq != 0 {
			n++
		}
	}
	return n
}
