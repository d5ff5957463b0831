package threshold_test

import (
	"testing"

	"github.com/katalvlaran/percolation/threshold"
)

// BenchmarkEstimator compares both samplers on 100×100 grids, 10 trials each.
func BenchmarkEstimator(b *testing.B) {
	for _, s := range []threshold.Sampler{threshold.Rejection, threshold.Shuffled} {
		b.Run(s.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := threshold.New(100, 10, threshold.WithSampler(s), threshold.WithSeed(int64(i+1))); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
