package percolation

import "github.com/katalvlaran/percolation/deque"

// Clusters returns the connected components of open sites under
// 4-connectivity. Components appear in row-major order of their first site;
// sites within a component appear in BFS order from that site.
//
// Virtual nodes are ignored, so two top-row sites joined only through the
// virtual top belong to different clusters.
//
// Time:   O(n²).
// Memory: O(n²) for visited flags and output.
func (g *Grid) Clusters() [][]Site {
	seen := make([]bool, len(g.open))
	queue := deque.New[int]()
	var comps [][]Site

	for e := 1; e <= g.n*g.n; e++ {
		if !g.open[e] || seen[e] {
			continue
		}
		seen[e] = true
		queue.PushBack(e)
		var comp []Site

		for !queue.IsEmpty() {
			u, _ := queue.PopFront()
			s := g.site(u)
			comp = append(comp, s)
			for _, d := range neighborOffsets {
				r, c := s.Row+d[0], s.Col+d[1]
				if !g.inBounds(r, c) {
					continue
				}
				v := g.element(r, c)
				if g.open[v] && !seen[v] {
					seen[v] = true
					queue.PushBack(v)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
