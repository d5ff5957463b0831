package threshold

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Sentinel errors for estimator construction.
var (
	// ErrInvalidSize indicates a non-positive grid dimension.
	ErrInvalidSize = errors.New("threshold: grid dimension must be positive")
	// ErrInvalidTrials indicates a non-positive trial count.
	ErrInvalidTrials = errors.New("threshold: trial count must be positive")
	// ErrUnknownSampler indicates an unsupported Sampler value or name.
	ErrUnknownSampler = errors.New("threshold: unknown sampler")
)

// ZScore95 is the two-sided 95% normal quantile used for the confidence interval.
const ZScore95 = 1.96

// RandomSource yields uniform integers in [0, n) for n > 0.
// *math/rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// Sampler selects how a trial picks the next closed site.
type Sampler int

const (
	// Rejection draws (row, col) uniformly and redraws on open sites.
	Rejection Sampler = iota
	// Shuffled dequeues sites from a randomized queue holding every site.
	Shuffled
)

// String returns the sampler's lower-case name.
func (s Sampler) String() string {
	switch s {
	case Rejection:
		return "rejection"
	case Shuffled:
		return "shuffled"
	default:
		return fmt.Sprintf("Sampler(%d)", int(s))
	}
}

// ParseSampler maps a name ("rejection", "shuffled"; case-insensitive) to a Sampler.
func ParseSampler(name string) (Sampler, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rejection", "":
		return Rejection, nil
	case "shuffled":
		return Shuffled, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSampler, name)
	}
}

// Options configures an Estimator.
//
// Fields:
//
//	Seed    int64        — base seed; 0 selects the fixed default seed.
//	Sampler Sampler      — site selection strategy (default Rejection).
//	Source  RandomSource — when non-nil, used for every trial and Seed is ignored.
//	Logger  *slog.Logger — receives per-trial debug records; nil discards them.
type Options struct {
	Seed    int64
	Sampler Sampler
	Source  RandomSource
	Logger  *slog.Logger
}

// Option modifies Options.
type Option func(*Options)

// WithSeed sets the base seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithSampler sets the site selection strategy.
func WithSampler(s Sampler) Option {
	return func(o *Options) {
		o.Sampler = s
	}
}

// WithSource makes every trial draw from src.
func WithSource(src RandomSource) Option {
	return func(o *Options) {
		o.Source = src
	}
}

// WithLogger sets the logger for trial progress.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns Options with Seed 0 (default seed), the Rejection
// sampler, no custom source and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Seed:    0,
		Sampler: Rejection,
		Source:  nil,
		Logger:  slog.New(slog.DiscardHandler),
	}
}

// Estimator holds the thresholds of completed trials and their summary
// statistics. It is immutable after New returns.
type Estimator struct {
	n          int
	thresholds []float64
	mean       float64
	stddev     float64
}
