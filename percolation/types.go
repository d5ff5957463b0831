package percolation

import (
	"errors"

	"github.com/katalvlaran/percolation/unionfind"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidSize indicates a non-positive grid dimension.
	ErrInvalidSize = errors.New("percolation: grid dimension must be positive")
	// ErrOutOfRange indicates a row or column outside [1, n].
	ErrOutOfRange = errors.New("percolation: site coordinate out of range")
)

// Site addresses one lattice cell; Row and Col are 1-indexed.
type Site struct {
	Row, Col int
}

// neighborOffsets lists the 4-connected (row, col) deltas: N, E, S, W.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Grid is an n×n percolation system.
// open is indexed by union-find element, so open[0] and open[n*n+1] are the
// virtual nodes and are always true.
type Grid struct {
	n      int
	open   []bool
	uf     *unionfind.UnionFind
	opened int
	top    int
	bottom int
}
