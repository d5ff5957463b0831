package unionfind

import "errors"

var (
	// ErrInvalidSize indicates a negative universe size.
	ErrInvalidSize = errors.New("unionfind: size must be non-negative")
	// ErrIndexOutOfRange indicates an element outside [0, n).
	ErrIndexOutOfRange = errors.New("unionfind: element index out of range")
)

// UnionFind is a weighted, path-compressed disjoint-set forest.
// parent[i] == i marks a root; size[r] is only meaningful for roots.
type UnionFind struct {
	parent []int
	size   []int
	count  int
}
