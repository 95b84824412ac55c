package bplustree

import (
	"cmp"
	"sort"
)

// descend returns the leaf that either holds key or is where key would be
// inserted, per spec.md §4.1. Insert, Lookup, Delete, and Range all
// funnel through this single primitive, mirroring the Python original's
// shared BPlusTree.search used by both search_value and insertion.
func (t *Tree[K, V]) descend(key K) *node[K, V] {
	n := t.root
	for !n.isLeaf() {
		i := childSlot(n.keys, key)
		n = n.children[i]
	}
	return n
}

// childSlot returns the count of separators <= key, i.e. the index of the
// child to descend into: the smallest i such that key < keys[i], or
// len(keys) if none. Keys equal to a separator therefore follow the right
// child of that separator, since separators equal their right subtree's
// minimum key.
func childSlot[K cmp.Ordered](keys []K, key K) int {
	return sort.Search(len(keys), func(i int) bool { return key < keys[i] })
}

// leafSlot returns the position at which key sits (or would sit) among a
// leaf's ascending keys, and whether it is already present there.
func leafSlot[K cmp.Ordered](keys []K, key K) (pos int, found bool) {
	pos = sort.Search(len(keys), func(i int) bool { return !(keys[i] < key) })
	found = pos < len(keys) && keys[pos] == key
	return pos, found
}
