package sim

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// RandomSource supplies samples from the named distributions the simulation
// consumes. Implementations are stateful streams: every sample advances the
// stream, and the engine treats the draw order as part of its reproducibility
// contract.
type RandomSource interface {
	// SampleCategorical draws one of outcomes, where cumulative[i] is the
	// probability of drawing outcomes[0..i].
	SampleCategorical(outcomes []int, cumulative []float64) int
	// SampleUniform draws uniformly from [low, high).
	SampleUniform(low, high float64) float64
	// SampleExponential draws from an exponential with the given mean.
	SampleExponential(mean float64) float64
}

// VariateStream is the default RandomSource: a single seeded PCG stream
// shared by all three distributions. Runs evaluated against the same stream
// see a continuing draw sequence; the stream is deliberately NOT reseeded
// between policy runs, so policies are compared against comparable demand
// histories.
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine.
type VariateStream struct {
	seed int64
	src  *rand.PCG
}

// NewVariateStream creates a deterministic variate stream from a seed.
// Two streams built from the same seed produce identical draw sequences.
func NewVariateStream(seed int64) *VariateStream {
	return &VariateStream{
		seed: seed,
		src:  rand.NewPCG(uint64(seed), uint64(seed)),
	}
}

// Seed returns the seed this stream was created from.
func (v *VariateStream) Seed() int64 {
	return v.seed
}

// SampleCategorical draws from the discrete distribution given by cumulative
// breakpoints over outcomes.
func (v *VariateStream) SampleCategorical(outcomes []int, cumulative []float64) int {
	// distuv wants per-outcome weights, so take first differences.
	weights := make([]float64, len(cumulative))
	prev := 0.0
	for i, c := range cumulative {
		weights[i] = c - prev
		prev = c
	}
	cat := distuv.NewCategorical(weights, v.src)
	return outcomes[int(cat.Rand())]
}

// SampleUniform draws uniformly from [low, high).
func (v *VariateStream) SampleUniform(low, high float64) float64 {
	u := distuv.Uniform{Min: low, Max: high, Src: v.src}
	return u.Rand()
}

// SampleExponential draws from an exponential distribution with the given
// mean.
func (v *VariateStream) SampleExponential(mean float64) float64 {
	e := distuv.Exponential{Rate: 1 / mean, Src: v.src}
	return e.Rand()
}
