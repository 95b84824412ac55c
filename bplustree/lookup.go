package bplustree

// Lookup returns the value associated with key and true, or the zero value
// of V and false if key is absent. Lookup never mutates the tree.
//
// The returned value is a copy (or, for reference-typed V, a short-lived
// reference) valid only until the next mutating call, per spec.md §5 —
// splits and merges may move the data it was read from.
func (t *Tree[K, V]) Lookup(key K) (V, bool) {
	leaf := t.descend(key)
	pos, found := leafSlot(leaf.keys, key)
	if !found {
		var zero V
		return zero, false
	}
	return leaf.values[pos], true
}
