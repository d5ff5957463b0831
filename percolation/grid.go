package percolation

import (
	"fmt"

	"github.com/katalvlaran/percolation/unionfind"
)

// New returns an n×n grid with every site closed.
// Returns ErrInvalidSize if n ≤ 0.
// Complexity: O(n²).
func New(n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	sites := n * n
	uf, err := unionfind.New(sites + 2)
	if err != nil {
		return nil, err
	}

	g := &Grid{
		n:      n,
		open:   make([]bool, sites+2),
		uf:     uf,
		top:    0,
		bottom: sites + 1,
	}
	g.open[g.top] = true
	g.open[g.bottom] = true

	return g, nil
}

// Size returns the grid dimension n.
func (g *Grid) Size() int { return g.n }

// OpenSites returns the number of distinct sites opened so far.
func (g *Grid) OpenSites() int { return g.opened }

// Open opens site (row, col). Opening an already open site changes nothing.
//
// Steps:
//  1. Validate (row, col).
//  2. Mark the site open and bump the open-site counter.
//  3. Join it with every open 4-neighbor inside the grid (no wraparound).
//  4. Join top-row sites with the virtual top and bottom-row sites with the
//     virtual bottom; for n = 1 the single site gets both.
func (g *Grid) Open(row, col int) error {
	idx, err := g.index(row, col)
	if err != nil {
		return err
	}
	if g.open[idx] {
		return nil
	}
	g.open[idx] = true
	g.opened++

	for _, d := range neighborOffsets {
		r, c := row+d[0], col+d[1]
		if !g.inBounds(r, c) {
			continue
		}
		nb := g.element(r, c)
		if !g.open[nb] {
			continue
		}
		if err := g.uf.Union(idx, nb); err != nil {
			return err
		}
	}

	if row == 1 {
		if err := g.uf.Union(g.top, idx); err != nil {
			return err
		}
	}
	if row == g.n {
		if err := g.uf.Union(g.bottom, idx); err != nil {
			return err
		}
	}

	return nil
}

// IsOpen reports whether site (row, col) is open.
func (g *Grid) IsOpen(row, col int) (bool, error) {
	idx, err := g.index(row, col)
	if err != nil {
		return false, err
	}

	return g.open[idx], nil
}

// IsFull reports whether site (row, col) is connected to the top row through
// open sites. A full site is always open.
func (g *Grid) IsFull(row, col int) (bool, error) {
	idx, err := g.index(row, col)
	if err != nil {
		return false, err
	}

	return g.uf.Connected(g.top, idx)
}

// Percolates reports whether the virtual top and bottom nodes are connected.
// Once true it stays true.
func (g *Grid) Percolates() bool {
	// Both virtual elements exist for the grid's whole lifetime.
	ok, _ := g.uf.Connected(g.top, g.bottom)
	return ok
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 1 && row <= g.n && col >= 1 && col <= g.n
}

// index validates (row, col) and returns its union-find element.
func (g *Grid) index(row, col int) (int, error) {
	if row < 1 || row > g.n {
		return 0, fmt.Errorf("%w: row %d not in [1,%d]", ErrOutOfRange, row, g.n)
	}
	if col < 1 || col > g.n {
		return 0, fmt.Errorf("%w: column %d not in [1,%d]", ErrOutOfRange, col, g.n)
	}

	return g.element(row, col), nil
}

// element maps an in-bounds (row, col) to (row-1)·n + col.
func (g *Grid) element(row, col int) int {
	return (row-1)*g.n + col
}

// site is the inverse of element for real sites.
func (g *Grid) site(e int) Site {
	return Site{Row: (e-1)/g.n + 1, Col: (e-1)%g.n + 1}
}
