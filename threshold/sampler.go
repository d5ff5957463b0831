package threshold

import (
	"github.com/katalvlaran/percolation/percolation"
	"github.com/katalvlaran/percolation/randqueue"
)

// openFunc opens random closed sites of g until it percolates and returns
// how many sites it opened.
type openFunc func(g *percolation.Grid, src RandomSource) (int, error)

func (s Sampler) opener() (openFunc, error) {
	switch s {
	case Rejection:
		return openByRejection, nil
	case Shuffled:
		return openByShuffle, nil
	default:
		return nil, ErrUnknownSampler
	}
}

// openByRejection draws row and col independently from [1, n] and discards
// draws that hit an open site. The loop checks percolation after each open,
// so it stops at the first open that connects top and bottom.
func openByRejection(g *percolation.Grid, src RandomSource) (int, error) {
	n := g.Size()
	opened := 0
	for !g.Percolates() {
		row := uniform(src, 1, n+1)
		col := uniform(src, 1, n+1)
		open, err := g.IsOpen(row, col)
		if err != nil {
			return opened, err
		}
		if open {
			continue
		}
		if err := g.Open(row, col); err != nil {
			return opened, err
		}
		opened++
	}

	return opened, nil
}

// openByShuffle enqueues every site and dequeues them in uniformly random
// order. Each dequeued site is closed by construction.
func openByShuffle(g *percolation.Grid, src RandomSource) (int, error) {
	n := g.Size()
	q := randqueue.New[int](src)
	for i := 0; i < n*n; i++ {
		q.Enqueue(i)
	}

	opened := 0
	for !g.Percolates() {
		i, err := q.Dequeue()
		if err != nil {
			return opened, err
		}
		if err := g.Open(i/n+1, i%n+1); err != nil {
			return opened, err
		}
		opened++
	}

	return opened, nil
}
