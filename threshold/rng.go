package threshold

import "math/rand"

// defaultRNGSeed replaces a zero seed so default runs stay reproducible.
const defaultRNGSeed int64 = 1

// deriveSeed mixes a parent seed with a stream id through a SplitMix64
// finalizer, so neighboring stream ids yield uncorrelated seeds.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// trialRNG returns the independent stream for trial i under base seed.
// Trial streams depend only on (seed, i), not on how many draws earlier
// trials consumed.
func trialRNG(seed int64, i int) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(deriveSeed(seed, uint64(i))))
}

// uniform returns an integer uniformly drawn from [lo, hi). hi must exceed lo.
func uniform(src RandomSource, lo, hi int) int {
	return lo + src.Intn(hi-lo)
}
