package bplustree

import (
	"cmp"
	"fmt"
)

// CheckInvariants walks the whole tree and reports the first violation of
// any of the seven structural invariants from spec.md §3. It is meant for
// tests and debugging, not the hot path — callers should not invoke it from
// production code on every mutation.
func (t *Tree[K, V]) CheckInvariants() error {
	if t.root == nil {
		return fmt.Errorf("bplustree: root is nil")
	}
	if !t.root.isRoot() {
		return fmt.Errorf("bplustree: root has a non-nil parent")
	}

	treeDepth := -1
	if _, _, err := t.checkNode(t.root, nil, nil, &treeDepth, 0); err != nil {
		return err
	}
	return t.checkLeafChain()
}

// checkNode validates n and everything below it, returning the minimum and
// maximum key found in its subtree so the caller can check ordering across
// siblings. lo and hi, when non-nil, bound the keys n is allowed to hold.
//
// treeDepth and currentLevel enforce invariant 1 (uniform leaf depth): the
// first leaf reached sets *treeDepth, and every subsequent leaf must land
// at that same currentLevel.
func (t *Tree[K, V]) checkNode(n *node[K, V], lo, hi *K, treeDepth *int, currentLevel int) (min, max K, err error) {
	if n.isLeaf() {
		return t.checkLeaf(n, lo, hi, treeDepth, currentLevel)
	}
	return t.checkInternal(n, lo, hi, treeDepth, currentLevel)
}

func (t *Tree[K, V]) checkLeaf(n *node[K, V], lo, hi *K, treeDepth *int, currentLevel int) (min, max K, err error) {
	if *treeDepth == -1 {
		*treeDepth = currentLevel
	} else if currentLevel != *treeDepth {
		return min, max, fmt.Errorf("bplustree: leaf at depth %d, expected %d", currentLevel, *treeDepth)
	}
	if len(n.keys) != len(n.values) {
		return min, max, fmt.Errorf("bplustree: leaf has %d keys but %d values", len(n.keys), len(n.values))
	}
	if !n.isRoot() && len(n.keys) < minLeafKeys(t.order) {
		return min, max, fmt.Errorf("bplustree: leaf underflow: %d keys, need >= %d", len(n.keys), minLeafKeys(t.order))
	}
	if len(n.keys) > t.order-1 {
		return min, max, fmt.Errorf("bplustree: leaf overflow: %d keys, max %d", len(n.keys), t.order-1)
	}
	if err := checkSorted(n.keys, lo, hi); err != nil {
		return min, max, err
	}
	if len(n.keys) > 0 {
		min, max = n.keys[0], n.keys[len(n.keys)-1]
	}
	return min, max, nil
}

func (t *Tree[K, V]) checkInternal(n *node[K, V], lo, hi *K, treeDepth *int, currentLevel int) (min, max K, err error) {
	if len(n.children) != len(n.keys)+1 {
		return min, max, fmt.Errorf("bplustree: internal node has %d keys but %d children", len(n.keys), len(n.children))
	}
	if !n.isRoot() && len(n.keys) < minInternalKeys(t.order) {
		return min, max, fmt.Errorf("bplustree: internal underflow: %d keys, need >= %d", len(n.keys), minInternalKeys(t.order))
	}
	if n.isRoot() && len(n.children) < 2 && len(n.children) != 0 {
		return min, max, fmt.Errorf("bplustree: internal root has only %d child", len(n.children))
	}
	if len(n.keys) > t.order-1 {
		return min, max, fmt.Errorf("bplustree: internal overflow: %d keys, max %d", len(n.keys), t.order-1)
	}
	if err := checkSorted(n.keys, lo, hi); err != nil {
		return min, max, err
	}

	for i, c := range n.children {
		if c.parent != n {
			return min, max, fmt.Errorf("bplustree: child %d's parent pointer does not point back to its parent", i)
		}

		var childLo, childHi *K
		if i > 0 {
			childLo = &n.keys[i-1]
		} else {
			childLo = lo
		}
		if i < len(n.keys) {
			childHi = &n.keys[i]
		} else {
			childHi = hi
		}

		cmin, cmax, err := t.checkNode(c, childLo, childHi, treeDepth, currentLevel+1)
		if err != nil {
			return min, max, err
		}
		if i > 0 && cmin != n.keys[i-1] {
			return min, max, fmt.Errorf("bplustree: separator %v does not match child %d's minimum key %v", n.keys[i-1], i, cmin)
		}
		if i == 0 {
			min = cmin
		}
		if i == len(n.children)-1 {
			max = cmax
		}
	}
	return min, max, nil
}

func checkSorted[K cmp.Ordered](keys []K, lo, hi *K) error {
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			return fmt.Errorf("bplustree: keys not strictly increasing at index %d: %v >= %v", i, keys[i-1], keys[i])
		}
	}
	if lo != nil && len(keys) > 0 && keys[0] < *lo {
		return fmt.Errorf("bplustree: key %v is below its lower bound %v", keys[0], *lo)
	}
	if hi != nil && len(keys) > 0 && keys[len(keys)-1] >= *hi {
		return fmt.Errorf("bplustree: key %v is not below its upper bound %v", keys[len(keys)-1], *hi)
	}
	return nil
}

// checkLeafChain verifies that the doubly-linked leaf chain is consistent
// and in strictly increasing order end to end, per invariant 5.
func (t *Tree[K, V]) checkLeafChain() error {
	var prev *node[K, V]
	var prevKey *K

	for leaf := t.leftmostLeaf(); leaf != nil; leaf = leaf.next {
		if leaf.prev != prev {
			return fmt.Errorf("bplustree: leaf chain prev pointer inconsistent")
		}
		for _, k := range leaf.keys {
			if prevKey != nil && *prevKey >= k {
				return fmt.Errorf("bplustree: leaf chain not strictly increasing: %v >= %v", *prevKey, k)
			}
			kk := k
			prevKey = &kk
		}
		prev = leaf
	}
	return nil
}
