package sim

import (
	"math"
	"testing"
)

func TestCalculatePercentile_InterpolatesBetweenRanks(t *testing.T) {
	// GIVEN the sorted list [1, 2, 3, 4]
	data := []int64{1, 2, 3, 4}

	// WHEN P50 is computed with interpolation
	got := CalculatePercentile(data, 50)

	// THEN the value falls midway between the two nearest ranks
	if got != 2.5 {
		t.Errorf("P50 of [1,2,3,4]: got %v, want 2.5", got)
	}
}

func TestCalculatePercentile_SingleElement(t *testing.T) {
	// GIVEN a single-element list
	data := []float64{42}

	// WHEN any percentile is computed
	// THEN it equals that element
	for _, p := range []float64{0, 50, 99, 100} {
		if got := CalculatePercentile(data, p); got != 42 {
			t.Errorf("P%v of [42]: got %v, want 42", p, got)
		}
	}
}

func TestCalculatePercentile_Extremes(t *testing.T) {
	// GIVEN a sorted list
	data := []int64{10, 20, 30}

	// WHEN P0 and P100 are computed
	// THEN they equal the minimum and maximum
	if got := CalculatePercentile(data, 0); got != 10 {
		t.Errorf("P0: got %v, want 10", got)
	}
	if got := CalculatePercentile(data, 100); got != 30 {
		t.Errorf("P100: got %v, want 30", got)
	}
}

func TestCalculatePercentile_Empty_ReturnsNaN(t *testing.T) {
	// GIVEN an empty list
	// WHEN a percentile is computed
	got := CalculatePercentile([]float64{}, 50)

	// THEN the result is NaN, not a dropped-sample estimate
	if !math.IsNaN(got) {
		t.Errorf("P50 of []: got %v, want NaN", got)
	}
}

func TestSortedFloats_SortsAndConverts(t *testing.T) {
	// GIVEN an unsorted int64 list
	got := SortedFloats([]int64{5, 1, 3})

	// THEN the result is sorted float64s
	want := []float64{1, 3, 5}
	for i, v := range got {
		if v != want[i] {
			t.Errorf("SortedFloats[%d]: got %v, want %v", i, v, want[i])
		}
	}
}
