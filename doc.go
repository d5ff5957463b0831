// Package percolation is a playground for site percolation on square
// lattices: open sites one at a time, ask whether the grid percolates, and
// estimate the critical threshold by Monte-Carlo simulation.
//
// 🚀 What is inside?
//
//	• unionfind/   — weighted, path-compressed disjoint sets
//	• percolation/ — n×n Grid with virtual top/bottom nodes, open clusters
//	• threshold/   — Estimator: mean, stddev and 95% confidence interval
//	• deque/       — generic double-ended queue
//	• randqueue/   — generic randomized queue
//
// Commands:
//
//	cmd/percolationstats — percolationstats <n> <trials>
//	cmd/permutation      — permutation <k> < items.txt
//
// Quick ASCII example (3×3, X = open):
//
//	X . .
//	X X .
//	. X .
//
// The open path (1,1)→(2,1)→(2,2)→(3,2) joins the top row to the bottom
// row, so the grid percolates with 4 of 9 sites open.
//
//	go get github.com/katalvlaran/percolation
package percolation
