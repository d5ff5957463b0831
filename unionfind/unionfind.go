package unionfind

import "fmt"

// New returns a UnionFind over n singleton sets {0}, {1}, ..., {n-1}.
// Returns ErrInvalidSize if n < 0.
// Complexity: O(n).
func New(n int) (*UnionFind, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Len returns the size of the universe.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Count returns the current number of disjoint sets.
func (uf *UnionFind) Count() int {
	return uf.count
}

// Find returns the root of the set containing p.
// Complexity: amortized O(α(n)).
func (uf *UnionFind) Find(p int) (int, error) {
	if err := uf.validate(p); err != nil {
		return -1, err
	}

	return uf.root(p), nil
}

// Connected reports whether p and q belong to the same set.
func (uf *UnionFind) Connected(p, q int) (bool, error) {
	if err := uf.validate(p); err != nil {
		return false, err
	}
	if err := uf.validate(q); err != nil {
		return false, err
	}

	return uf.root(p) == uf.root(q), nil
}

// Union merges the sets containing p and q. Merging two elements that are
// already connected is a no-op.
//
// Steps:
//  1. Validate both indices.
//  2. Resolve both roots; return if equal.
//  3. Link the root of the smaller tree under the root of the larger one
//     (on ties q's root goes under p's root) and accumulate the size.
//
// Complexity: amortized O(α(n)).
func (uf *UnionFind) Union(p, q int) error {
	if err := uf.validate(p); err != nil {
		return err
	}
	if err := uf.validate(q); err != nil {
		return err
	}

	rootP, rootQ := uf.root(p), uf.root(q)
	if rootP == rootQ {
		return nil
	}

	if uf.size[rootP] < uf.size[rootQ] {
		uf.parent[rootP] = rootQ
		uf.size[rootQ] += uf.size[rootP]
	} else {
		uf.parent[rootQ] = rootP
		uf.size[rootP] += uf.size[rootQ]
	}
	uf.count--

	return nil
}

// root walks to the root of p, halving the path on the way.
// p must already be validated.
func (uf *UnionFind) root(p int) int {
	for uf.parent[p] != p {
		uf.parent[p] = uf.parent[uf.parent[p]]
		p = uf.parent[p]
	}

	return p
}

func (uf *UnionFind) validate(p int) error {
	if p < 0 || p >= len(uf.parent) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, p, len(uf.parent))
	}

	return nil
}
