// Package threshold estimates the site-percolation threshold of an n×n grid
// by Monte-Carlo simulation.
//
// 🚀 What it does
//
//	Each trial builds a fresh percolation.Grid, opens closed sites chosen
//	uniformly at random until the grid percolates, and records the fraction
//	of open sites at that moment. Over T trials the Estimator reports
//	  • Mean        — sample mean of the recorded thresholds
//	  • StdDev      — sample standard deviation (denominator T−1)
//	  • ConfidenceLo / ConfidenceHi — mean ∓ 1.96·stddev/√T
//
//	The interval always uses the normal z-score 1.96, whatever T is.
//	StdDev (and hence the interval) is NaN for T = 1.
//
// ⚙️ Usage:
//
//	est, err := threshold.New(200, 100, threshold.WithSeed(42))
//	if err != nil {
//	  // handle ErrInvalidSize / ErrInvalidTrials
//	}
//	fmt.Println(est.Mean(), est.ConfidenceLo(), est.ConfidenceHi())
//
// Samplers:
//
//   - Rejection (default): row and col are drawn independently from [1, n];
//     a draw that lands on an open site is discarded and redrawn.
//   - Shuffled: every site is put in a randqueue.Queue and dequeued at random,
//     so no draw is wasted. The threshold distribution is the same.
//
// Randomness:
//
//   - Seed 0 selects a fixed default seed, so runs are reproducible by default.
//   - Every trial gets its own stream derived from the base seed.
//   - WithSource replaces all of this with a caller-supplied RandomSource
//     shared by every trial.
//
// Complexity: O(T · n² · α(n²)) time for Shuffled; Rejection adds the
// expected redraws, O(T · n² · log n²) worst case. Memory: O(n² + T).
package threshold
