// Package percolation models an n×n lattice of sites that are opened one at
// a time, and answers whether the open sites connect the top row to the
// bottom row.
//
// What:
//
//   - Grid holds the open/closed state of n² sites, addressed by 1-indexed
//     (row, col) coordinates.
//   - A site is full when an open path links it to the top row.
//   - The grid percolates when an open path links the top row to the bottom row.
//
// How:
//
//   - Connectivity lives in a unionfind.UnionFind over n²+2 elements.
//     Site (row, col) maps to element (row-1)·n + col; element 0 is a virtual
//     top node and element n²+1 a virtual bottom node.
//   - Opening a top-row site joins it to the virtual top, a bottom-row site to
//     the virtual bottom. Percolates is then one Connected query between the
//     two virtual nodes instead of a scan over both boundary rows.
//   - Clusters reports the open components, found by BFS over a deque.
//
// Complexity:
//
//   - New:                       O(n²) time and memory.
//   - Open/IsFull/Percolates:    amortized O(α(n²)).
//   - IsOpen/OpenSites:          O(1).
//   - Clusters:                  O(n²).
//
// Errors:
//
//   - ErrInvalidSize: n ≤ 0.
//   - ErrOutOfRange:  row or col outside [1, n].
//
// Backwash: with a single virtual bottom, once the grid percolates a site
// linked to the bottom row but not otherwise to the top also reports full.
// This matches the classic two-sentinel model and is kept deliberately.
//
// A Grid is not safe for concurrent use.
package percolation
