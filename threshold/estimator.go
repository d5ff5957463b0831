package threshold

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/percolation/percolation"
)

// New runs trials independent percolation experiments on an n×n grid and
// returns their summary.
//
// Steps:
//  1. Validate n > 0 and trials > 0 (ErrInvalidSize, ErrInvalidTrials).
//  2. Resolve options and the sampler (ErrUnknownSampler).
//  3. For each trial: build a fresh grid, open random closed sites until it
//     percolates, record opened / n².
//  4. Compute the sample mean and sample standard deviation once.
//
// All work happens before New returns.
func New(n, trials int, opts ...Option) (*Estimator, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	if trials <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTrials, trials)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = DefaultOptions().Logger
	}
	open, err := o.Sampler.opener()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", err, o.Sampler)
	}

	sites := float64(n) * float64(n)
	thresholds := make([]float64, trials)
	for i := 0; i < trials; i++ {
		src := o.Source
		if src == nil {
			src = trialRNG(o.Seed, i)
		}

		g, err := percolation.New(n)
		if err != nil {
			return nil, err
		}
		opened, err := open(g, src)
		if err != nil {
			return nil, fmt.Errorf("threshold: trial %d: %w", i, err)
		}
		thresholds[i] = float64(opened) / sites

		o.Logger.Debug("trial complete",
			"trial", i,
			"n", n,
			"opened", opened,
			"threshold", thresholds[i],
		)
	}

	mean, stddev := stat.MeanStdDev(thresholds, nil)

	return &Estimator{
		n:          n,
		thresholds: thresholds,
		mean:       mean,
		stddev:     stddev,
	}, nil
}

// N returns the grid dimension.
func (e *Estimator) N() int { return e.n }

// Trials returns the number of completed trials.
func (e *Estimator) Trials() int { return len(e.thresholds) }

// Thresholds returns a copy of the per-trial thresholds in trial order.
func (e *Estimator) Thresholds() []float64 {
	return slices.Clone(e.thresholds)
}

// Mean returns the sample mean of the thresholds.
func (e *Estimator) Mean() float64 { return e.mean }

// StdDev returns the sample standard deviation of the thresholds; NaN for a
// single trial.
func (e *Estimator) StdDev() float64 { return e.stddev }

// ConfidenceLo returns the low endpoint of the 95% confidence interval.
func (e *Estimator) ConfidenceLo() float64 {
	return e.mean - e.halfInterval()
}

// ConfidenceHi returns the high endpoint of the 95% confidence interval.
func (e *Estimator) ConfidenceHi() float64 {
	return e.mean + e.halfInterval()
}

func (e *Estimator) halfInterval() float64 {
	return ZScore95 * e.stddev / math.Sqrt(float64(len(e.thresholds)))
}
