// Package unionfind implements a disjoint-set forest (union–find) over a fixed
// universe of integer elements [0, n).
//
// What:
//
//   - Union(p, q) merges the sets containing p and q.
//   - Connected(p, q) reports whether p and q share a set.
//   - Find(p) returns the canonical root of p's set.
//
// How:
//
//   - Weighted quick-union: the root of the smaller tree is linked under the
//     root of the larger one, so tree height stays O(log n).
//   - Path compression by halving during Find: every visited node is
//     re-pointed at its grandparent, flattening the tree as a side effect of
//     queries with the same amortized bound as full compression.
//
// Complexity:
//
//   - New:                  O(n) time and memory.
//   - Find/Union/Connected: amortized O(α(n)) (inverse Ackermann), effectively constant.
//
// Errors:
//
//   - ErrInvalidSize:     negative universe size passed to New.
//   - ErrIndexOutOfRange: element outside [0, n).
//
// Concurrency: a UnionFind is not safe for concurrent mutation.
package unionfind
