package threshold_test

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/threshold"
)

// scriptedSource replays fixed draws; it fails the test when exhausted.
type scriptedSource struct {
	t     *testing.T
	draws []int
}

func (s *scriptedSource) Intn(n int) int {
	s.t.Helper()
	require.NotEmpty(s.t, s.draws, "scripted source exhausted")
	v := s.draws[0]
	s.draws = s.draws[1:]
	require.Less(s.t, v, n, "scripted draw out of range")
	return v
}

// TestNew_InvalidArguments ensures eager validation of n and trials.
func TestNew_InvalidArguments(t *testing.T) {
	_, err := threshold.New(0, 10)
	assert.ErrorIs(t, err, threshold.ErrInvalidSize)
	_, err = threshold.New(-3, 10)
	assert.ErrorIs(t, err, threshold.ErrInvalidSize)
	_, err = threshold.New(5, 0)
	assert.ErrorIs(t, err, threshold.ErrInvalidTrials)
	_, err = threshold.New(5, -1)
	assert.ErrorIs(t, err, threshold.ErrInvalidTrials)
	_, err = threshold.New(5, 1, threshold.WithSampler(threshold.Sampler(42)))
	assert.ErrorIs(t, err, threshold.ErrUnknownSampler)
}

// TestSingleSiteSingleTrial checks n=1, T=1: the mean is exactly 1 and the
// sample deviation, hence the interval, is undefined.
func TestSingleSiteSingleTrial(t *testing.T) {
	for _, s := range []threshold.Sampler{threshold.Rejection, threshold.Shuffled} {
		est, err := threshold.New(1, 1, threshold.WithSampler(s))
		require.NoError(t, err, s.String())
		assert.Equal(t, 1.0, est.Mean(), s.String())
		assert.True(t, math.IsNaN(est.StdDev()), s.String())
		assert.True(t, math.IsNaN(est.ConfidenceLo()), s.String())
		assert.True(t, math.IsNaN(est.ConfidenceHi()), s.String())
		assert.Equal(t, 1, est.Trials())
		assert.Equal(t, 1, est.N())
	}
}

// TestSingleSiteManyTrials checks zero spread when every trial gives 1.
func TestSingleSiteManyTrials(t *testing.T) {
	est, err := threshold.New(1, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1, 1, 1}, est.Thresholds())
	assert.Equal(t, 1.0, est.Mean())
	assert.Equal(t, 0.0, est.StdDev())
	assert.Equal(t, 1.0, est.ConfidenceLo())
	assert.Equal(t, 1.0, est.ConfidenceHi())
}

// TestThresholdBounds verifies every threshold lies in [1/n, 1]: a
// percolating path needs at least n open sites.
func TestThresholdBounds(t *testing.T) {
	for _, s := range []threshold.Sampler{threshold.Rejection, threshold.Shuffled} {
		for _, n := range []int{2, 3, 10} {
			est, err := threshold.New(n, 25, threshold.WithSampler(s), threshold.WithSeed(17))
			require.NoError(t, err)
			for i, p := range est.Thresholds() {
				assert.Greater(t, p, 0.0, "%s n=%d trial %d", s, n, i)
				assert.LessOrEqual(t, p, 1.0, "%s n=%d trial %d", s, n, i)
				assert.GreaterOrEqual(t, p, 1/float64(n), "%s n=%d trial %d", s, n, i)
			}
		}
	}
}

// TestRejection_Redraw scripts the draws on a 2×2 grid: (1,1) is opened,
// then drawn again and discarded, then (2,1) completes a vertical path.
func TestRejection_Redraw(t *testing.T) {
	src := &scriptedSource{t: t, draws: []int{0, 0, 0, 0, 1, 0}}
	est, err := threshold.New(2, 1, threshold.WithSource(src))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5}, est.Thresholds())
	assert.Empty(t, src.draws, "all scripted draws must be consumed")
}

// TestShuffled_Scripted drives the randomized queue with first-slot picks.
// Sites are enqueued as 0..3; picking slot 0 each time dequeues 0, 3, 2:
// (1,1), (2,2), (2,1). The grid percolates after the third open.
func TestShuffled_Scripted(t *testing.T) {
	src := &scriptedSource{t: t, draws: []int{0, 0, 0}}
	est, err := threshold.New(2, 1, threshold.WithSampler(threshold.Shuffled), threshold.WithSource(src))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.75}, est.Thresholds())
}

// TestDeterminism verifies equal seeds reproduce the thresholds and
// different seeds do not.
func TestDeterminism(t *testing.T) {
	a, err := threshold.New(10, 20, threshold.WithSeed(7))
	require.NoError(t, err)
	b, err := threshold.New(10, 20, threshold.WithSeed(7))
	require.NoError(t, err)
	c, err := threshold.New(10, 20, threshold.WithSeed(8))
	require.NoError(t, err)

	assert.Equal(t, a.Thresholds(), b.Thresholds())
	assert.NotEqual(t, a.Thresholds(), c.Thresholds())

	// Seed 0 maps to the fixed default seed.
	d, err := threshold.New(10, 20)
	require.NoError(t, err)
	e, err := threshold.New(10, 20, threshold.WithSeed(0))
	require.NoError(t, err)
	assert.Equal(t, d.Thresholds(), e.Thresholds())
}

// TestStatistics checks the estimate lands near the known threshold
// (≈0.593 for large grids) and the interval is consistent.
func TestStatistics(t *testing.T) {
	const trials = 60
	for _, s := range []threshold.Sampler{threshold.Rejection, threshold.Shuffled} {
		est, err := threshold.New(20, trials, threshold.WithSampler(s), threshold.WithSeed(2024))
		require.NoError(t, err)

		assert.InDelta(t, 0.593, est.Mean(), 0.05, s.String())
		assert.Greater(t, est.StdDev(), 0.0, s.String())
		assert.Less(t, est.StdDev(), 0.2, s.String())
		assert.Less(t, est.ConfidenceLo(), est.Mean())
		assert.Greater(t, est.ConfidenceHi(), est.Mean())

		half := threshold.ZScore95 * est.StdDev() / math.Sqrt(trials)
		assert.InDelta(t, 2*half, est.ConfidenceHi()-est.ConfidenceLo(), 1e-12)
	}
}

// TestThresholds_Copy ensures callers cannot mutate recorded results.
func TestThresholds_Copy(t *testing.T) {
	est, err := threshold.New(4, 3)
	require.NoError(t, err)
	got := est.Thresholds()
	got[0] = -1
	assert.NotEqual(t, -1.0, est.Thresholds()[0])
}

// TestWithLogger verifies one debug record per trial.
func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := threshold.New(3, 4, threshold.WithLogger(logger))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], `"msg":"trial complete"`)
	assert.Contains(t, lines[0], `"trial":0`)

	// A nil logger falls back to discarding.
	_, err = threshold.New(3, 1, threshold.WithLogger(nil))
	assert.NoError(t, err)
}

// TestParseSampler covers names, case folding and rejection of unknowns.
func TestParseSampler(t *testing.T) {
	cases := map[string]threshold.Sampler{
		"rejection": threshold.Rejection,
		"Shuffled":  threshold.Shuffled,
		"":          threshold.Rejection,
	}
	for name, want := range cases {
		got, err := threshold.ParseSampler(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
		if name != "" {
			assert.Equal(t, strings.ToLower(name), got.String())
		}
	}
	_, err := threshold.ParseSampler("quantum")
	assert.ErrorIs(t, err, threshold.ErrUnknownSampler)
	assert.Equal(t, "Sampler(9)", threshold.Sampler(9).String())
}
