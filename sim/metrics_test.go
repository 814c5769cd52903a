package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func completedTask(id string, entry, start int64, endpoint int) *Task {
	return &Task{ID: id, State: StateCompleted, QueueEntryTime: entry, ServiceStart: start, EndpointID: endpoint}
}

func TestComputeReport_Counts(t *testing.T) {
	tasks := []*Task{
		completedTask("a", 0, 0, 1),
		completedTask("b", 0, 5, 2),
		{ID: "c", State: StateRejected},
		{ID: "d", State: StateFailed, QueueEntryTime: 0, ServiceStart: 10},
	}

	r := ComputeReport(tasks, 2, nil)

	assert.Equal(t, 4, r.TotalTasks)
	assert.Equal(t, 2, r.Completed)
	assert.Equal(t, 1, r.Rejected)
	assert.Equal(t, 1, r.Failed)
	// conservation: rejected + failed + completed == total
	assert.Equal(t, r.TotalTasks, r.Completed+r.Rejected+r.Failed)
}

func TestComputeReport_DelayIncludesFailedExcludesRejected(t *testing.T) {
	// Delays: completed 0 and 5, failed 10. Rejected contributes nothing.
	tasks := []*Task{
		completedTask("a", 0, 0, 1),
		completedTask("b", 0, 5, 1),
		{ID: "c", State: StateFailed, QueueEntryTime: 0, ServiceStart: 10},
		{ID: "d", State: StateRejected},
	}

	r := ComputeReport(tasks, 1, []float64{50})

	assert.InDelta(t, 5.0, r.MeanDelay, 1e-9)
	assert.Equal(t, 50.0, r.Percentiles[0].Percentile)
	assert.InDelta(t, 5.0, r.Percentiles[0].Value, 1e-9)
}

func TestComputeReport_EndpointHistogram_CompletedOnly(t *testing.T) {
	tasks := []*Task{
		completedTask("a", 0, 0, 1),
		completedTask("b", 0, 0, 1),
		completedTask("c", 0, 0, 3),
		{ID: "d", State: StateFailed},
	}

	r := ComputeReport(tasks, 3, nil)

	// every configured endpoint appears, unused ones at zero
	assert.Equal(t, map[int]int{1: 2, 2: 0, 3: 1}, r.EndpointUsage)
}

func TestComputeReport_NoDispatchedTasks_NaNStats(t *testing.T) {
	tasks := []*Task{{ID: "a", State: StateRejected}}

	r := ComputeReport(tasks, 1, nil)

	assert.True(t, math.IsNaN(r.MeanDelay))
	for _, pv := range r.Percentiles {
		assert.True(t, math.IsNaN(pv.Value), "P%v should be NaN", pv.Percentile)
	}
	assert.Equal(t, 1, r.Rejected)
}

func TestComputeReport_DefaultPercentileSet(t *testing.T) {
	r := ComputeReport([]*Task{completedTask("a", 0, 1, 1)}, 1, nil)

	got := make([]float64, 0, len(r.Percentiles))
	for _, pv := range r.Percentiles {
		got = append(got, pv.Percentile)
	}
	assert.Equal(t, DefaultPercentiles, got)
}
