package sim

import (
	"math"
	"sort"
)

type IntOrFloat64 interface {
	int | int64 | float64
}

// CalculatePercentile calculates the p-th percentile of sorted data using
// linear interpolation between the two nearest ranks (the percentile-rank
// method at rank p/100*(n-1), matching numpy.percentile). Returns NaN for an
// empty list; a single-element list returns that element for every p.
func CalculatePercentile[T IntOrFloat64](data []T, p float64) float64 {
	n := len(data)
	if n == 0 {
		return math.NaN()
	}

	rank := p / 100.0 * float64(n-1)
	lowerIdx := int(math.Floor(rank))
	upperIdx := int(math.Ceil(rank))
	if upperIdx >= n {
		upperIdx = n - 1
	}

	if lowerIdx == upperIdx {
		return float64(data[lowerIdx])
	}
	lowerVal := float64(data[lowerIdx])
	upperVal := float64(data[upperIdx])
	return lowerVal + (upperVal-lowerVal)*(rank-float64(lowerIdx))
}

// SortedFloats converts a numeric list to a sorted []float64 for use with
// CalculatePercentile and the gonum stat helpers.
func SortedFloats[T IntOrFloat64](data []T) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v)
	}
	sort.Float64s(out)
	return out
}
