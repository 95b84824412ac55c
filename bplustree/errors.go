package bplustree

import "errors"

// Cursor misuse errors, returned by Seek. Absent-key conditions on Lookup
// and Delete are not errors (spec.md §7) and are reported via the
// (value, bool) and bool idioms instead; these sentinels exist only for
// operations that have nothing sensible to return.
var (
	// ErrEmptyTree is returned by Seek when the tree holds no keys at all.
	ErrEmptyTree = errors.New("bplustree: tree is empty")
)
