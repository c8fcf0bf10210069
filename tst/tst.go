// Package tst implements a ternary search trie: an ordered symbol table with
// string keys that answers exact lookups and longest-prefix queries.
//
// Keys are compared byte by byte.  Each node holds one byte and three
// links: keys whose next byte sorts lower go left, higher go right, and
// keys that share the byte continue down the middle link with the following
// byte.
//
// References:
//
//     Sedgewick & Wayne, "Algorithms", 4th ed., Section 5.2
//
package tst

import (
	"iter"
)

// Trie is a symbol table mapping non-empty string keys to values of type V.
// The zero value is an empty Trie ready to use.
type Trie[V any] struct {
	root *node[V]
	size int
}

type node[V any] struct {
	c                byte
	left, mid, right *node[V]
	val              V
	ok               bool
}

// Size returns the number of keys that currently hold a value.
func (t *Trie[V]) Size() int {
	return t.size
}

// Contains reports whether key holds a value.
func (t *Trie[V]) Contains(key string) bool {
	_, found := t.Get(key)
	return found
}

// Get returns the value associated with key.  The empty key is never
// present.
func (t *Trie[V]) Get(key string) (V, bool) {
	var zero V
	if len(key) == 0 {
		return zero, false
	}
	x := t.find(key)
	if x == nil || !x.ok {
		return zero, false
	}
	return x.val, true
}

func (t *Trie[V]) find(key string) *node[V] {
	x := t.root
	idx := 0
	for x != nil {
		c := key[idx]
		switch {
		case c < x.c:
			x = x.left
		case c > x.c:
			x = x.right
		case idx < len(key)-1:
			x = x.mid
			idx++
		default:
			return x
		}
	}
	return nil
}

// Put associates val with key, replacing any previous value.  Putting the
// empty key is a no-op.
func (t *Trie[V]) Put(key string, val V) {
	if len(key) == 0 {
		return
	}
	t.root = t.put(t.root, key, val, 0)
}

func (t *Trie[V]) put(x *node[V], key string, val V, idx int) *node[V] {
	c := key[idx]
	if x == nil {
		x = &node[V]{c: c}
	}
	switch {
	case c < x.c:
		x.left = t.put(x.left, key, val, idx)
	case c > x.c:
		x.right = t.put(x.right, key, val, idx)
	case idx < len(key)-1:
		x.mid = t.put(x.mid, key, val, idx+1)
	default:
		if !x.ok {
			t.size++
		}
		x.val = val
		x.ok = true
	}
	return x
}

// Delete removes the value associated with key, if any.  Nodes on the path
// are kept, so the shape of the trie does not change.
func (t *Trie[V]) Delete(key string) {
	if len(key) == 0 {
		return
	}
	x := t.find(key)
	if x == nil || !x.ok {
		return
	}
	var zero V
	x.val = zero
	x.ok = false
	t.size--
}

// LongestPrefixOf returns the longest key holding a value that is a prefix
// of query, or "" if there is none.
func (t *Trie[V]) LongestPrefixOf(query string) string {
	n := 0
	x := t.root
	idx := 0
	for x != nil && idx < len(query) {
		c := query[idx]
		switch {
		case c < x.c:
			x = x.left
		case c > x.c:
			x = x.right
		default:
			idx++
			if x.ok {
				n = idx
			}
			x = x.mid
		}
	}
	return query[:n]
}

// Keys returns every key holding a value.  Keys are produced lazily in trie
// order: the left subtree, then the node itself, then the middle subtree,
// then the right subtree.  For byte strings this is ascending
// lexicographic order.  Each call starts a fresh traversal.
func (t *Trie[V]) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		var buf []byte
		collect(t.root, buf, yield)
	}
}

// KeysWithPrefix returns every key holding a value that starts with prefix,
// in the same order as Keys.
func (t *Trie[V]) KeysWithPrefix(prefix string) iter.Seq[string] {
	if len(prefix) == 0 {
		return t.Keys()
	}
	return func(yield func(string) bool) {
		x := t.find(prefix)
		if x == nil {
			return
		}
		if x.ok && !yield(prefix) {
			return
		}
		collect(x.mid, []byte(prefix), yield)
	}
}

func collect[V any](x *node[V], prefix []byte, yield func(string) bool) bool {
	if x == nil {
		return true
	}
	if !collect(x.left, prefix, yield) {
		return false
	}
	prefix = append(prefix, x.c)
	if x.ok && !yield(string(prefix)) {
		return false
	}
	if !collect(x.mid, prefix, yield) {
		return false
	}
	return collect(x.right, prefix[:len(prefix)-1], yield)
}
