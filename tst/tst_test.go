package tst

import (
	"math/rand/v2"
	"slices"
	"sort"
	"testing"
)

func makeTestTrie() *Trie[int] {
	var t Trie[int]
	for i, key := range []string{"she", "sells", "sea", "shells", "by", "the", "sea", "shore"} {
		t.Put(key, i)
	}
	return &t
}

func TestTrie_GetAndSize(t *testing.T) {
	trie := makeTestTrie()

	if trie.Size() != 7 {
		t.Errorf("expected size 7, got %d", trie.Size())
	}

	type testRow struct {
		key   string
		val   int
		found bool
	}

	testData := [...]testRow{
		{key: "she", val: 0, found: true},
		{key: "sea", val: 6, found: true},
		{key: "shells", val: 3, found: true},
		{key: "shore", val: 7, found: true},
		{key: "sh", found: false},
		{key: "shell", found: false},
		{key: "shellsx", found: false},
		{key: "a", found: false},
		{key: "", found: false},
	}
	for _, row := range testData {
		t.Run(row.key, func(t *testing.T) {
			val, found := trie.Get(row.key)
			if found != row.found {
				t.Errorf("expected found=%v, got %v", row.found, found)
			}
			if found && val != row.val {
				t.Errorf("expected value %d, got %d", row.val, val)
			}
			if trie.Contains(row.key) != row.found {
				t.Errorf("Contains disagrees with Get")
			}
		})
	}
}

func TestTrie_LongestPrefixOf(t *testing.T) {
	trie := makeTestTrie()

	type testRow struct {
		query  string
		expect string
	}

	testData := [...]testRow{
		{"shellsort", "shells"},
		{"shell", "she"},
		{"shore", "shore"},
		{"seashells", "sea"},
		{"quicksort", ""},
		{"s", ""},
		{"", ""},
	}
	for _, row := range testData {
		t.Run(row.query, func(t *testing.T) {
			actual := trie.LongestPrefixOf(row.query)
			if actual != row.expect {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.expect, actual)
			}
		})
	}
}

func TestTrie_Delete(t *testing.T) {
	trie := makeTestTrie()

	trie.Delete("she")
	if trie.Size() != 6 {
		t.Errorf("expected size 6, got %d", trie.Size())
	}
	if trie.Contains("she") {
		t.Error("expected \"she\" to be gone")
	}
	if !trie.Contains("shells") {
		t.Error("expected \"shells\" to survive deletion of its prefix")
	}
	if actual := trie.LongestPrefixOf("shelter"); actual != "" {
		t.Errorf("expected no prefix of \"shelter\", got %q", actual)
	}

	// absent keys and repeated deletes leave the size alone
	trie.Delete("she")
	trie.Delete("nope")
	trie.Delete("")
	if trie.Size() != 6 {
		t.Errorf("expected size 6, got %d", trie.Size())
	}

	// overwriting does not change the size
	trie.Put("sea", 42)
	if trie.Size() != 6 {
		t.Errorf("expected size 6, got %d", trie.Size())
	}
	if val, _ := trie.Get("sea"); val != 42 {
		t.Errorf("expected 42, got %d", val)
	}

	trie.Put("she", 1)
	if trie.Size() != 7 {
		t.Errorf("expected size 7, got %d", trie.Size())
	}
}

func TestTrie_Keys(t *testing.T) {
	trie := makeTestTrie()

	expect := []string{"by", "sea", "sells", "she", "shells", "shore", "the"}
	actual := slices.Collect(trie.Keys())
	if !slices.Equal(expect, actual) {
		t.Errorf("wrong keys:\n\texpect: %q\n\tactual: %q", expect, actual)
	}

	// restartable
	again := slices.Collect(trie.Keys())
	if !slices.Equal(expect, again) {
		t.Errorf("second traversal differs:\n\texpect: %q\n\tactual: %q", expect, again)
	}

	// early exit
	var first []string
	for key := range trie.Keys() {
		first = append(first, key)
		if len(first) == 2 {
			break
		}
	}
	if !slices.Equal(expect[:2], first) {
		t.Errorf("wrong prefix of keys:\n\texpect: %q\n\tactual: %q", expect[:2], first)
	}

	withPrefix := slices.Collect(trie.KeysWithPrefix("sh"))
	expectPrefix := []string{"she", "shells", "shore"}
	if !slices.Equal(expectPrefix, withPrefix) {
		t.Errorf("wrong keys with prefix:\n\texpect: %q\n\tactual: %q", expectPrefix, withPrefix)
	}

	if keys := slices.Collect(trie.KeysWithPrefix("x")); len(keys) != 0 {
		t.Errorf("expected no keys, got %q", keys)
	}
}

func TestTrie_RandomAgainstMap(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 21))
	var trie Trie[int]
	shadow := make(map[string]int)

	randomKey := func() string {
		b := make([]byte, 1+rng.IntN(4))
		for i := range b {
			b[i] = byte('a' + rng.IntN(3))
		}
		return string(b)
	}

	for i := 0; i < 2000; i++ {
		key := randomKey()
		if rng.IntN(4) == 0 {
			trie.Delete(key)
			delete(shadow, key)
		} else {
			trie.Put(key, i)
			shadow[key] = i
		}
		if trie.Size() != len(shadow) {
			t.Fatalf("step %d: expected size %d, got %d", i, len(shadow), trie.Size())
		}
	}

	var expectKeys []string
	for key := range shadow {
		expectKeys = append(expectKeys, key)
	}
	sort.Strings(expectKeys)
	actualKeys := slices.Collect(trie.Keys())
	if !slices.Equal(expectKeys, actualKeys) {
		t.Fatalf("wrong keys:\n\texpect: %q\n\tactual: %q", expectKeys, actualKeys)
	}

	for i := 0; i < 200; i++ {
		query := randomKey() + randomKey()
		expect := ""
		for n := len(query); n > 0; n-- {
			if _, ok := shadow[query[:n]]; ok {
				expect = query[:n]
				break
			}
		}
		if actual := trie.LongestPrefixOf(query); actual != expect {
			t.Errorf("LongestPrefixOf(%q):\n\texpect: %q\n\tactual: %q", query, expect, actual)
		}
	}
}
