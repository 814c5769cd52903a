package workload

import (
	"math/rand"
)

// ArrivalSampler generates inter-arrival times for the trace generator.
type ArrivalSampler interface {
	// SampleIAT returns the next inter-arrival time in ticks.
	// Always returns a non-negative value.
	SampleIAT(rng *rand.Rand) int64
}

// PoissonSampler generates exponentially-distributed inter-arrival times.
type PoissonSampler struct {
	meanIAT float64 // mean inter-arrival time in ticks
}

// NewPoissonSampler creates a sampler with the given mean inter-arrival ticks.
func NewPoissonSampler(meanIAT float64) *PoissonSampler {
	return &PoissonSampler{meanIAT: meanIAT}
}

func (s *PoissonSampler) SampleIAT(rng *rand.Rand) int64 {
	iat := int64(rng.ExpFloat64() * s.meanIAT)
	if iat < 0 {
		return 0
	}
	return iat
}

// UniformSampler generates inter-arrival times uniform over [min, max].
type UniformSampler struct {
	min, max int64
}

// NewUniformSampler creates a sampler over the inclusive range [min, max].
func NewUniformSampler(min, max int64) *UniformSampler {
	return &UniformSampler{min: min, max: max}
}

func (s *UniformSampler) SampleIAT(rng *rand.Rand) int64 {
	if s.max <= s.min {
		return s.min
	}
	return s.min + rng.Int63n(s.max-s.min+1)
}
