// Post-processes terminal task records into aggregate metrics: outcome
// counts, the queueing-delay distribution, and per-endpoint usage.

package sim

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// PercentileValue pairs a requested percentile with its interpolated value.
type PercentileValue struct {
	Percentile float64 `yaml:"percentile"`
	Value      float64 `yaml:"value"`
}

// Report aggregates statistics over the terminal task list of one run.
// Queueing delay is ServiceStart - QueueEntryTime, defined for completed and
// failed tasks (both went through dispatch); rejected tasks contribute only
// to the rejection count. The endpoint histogram counts completed tasks per
// serving endpoint.
type Report struct {
	TotalTasks int `yaml:"total_tasks"`
	Completed  int `yaml:"completed"`
	Rejected   int `yaml:"rejected"`
	Failed     int `yaml:"failed"`

	MeanDelay   float64 `yaml:"mean_delay"`
	StdDevDelay float64 `yaml:"stddev_delay"`

	Percentiles []PercentileValue `yaml:"percentiles"`

	// EndpointUsage maps endpoint ID (1..N) to completed-task count.
	// Every configured endpoint appears, including unused ones.
	EndpointUsage map[int]int `yaml:"endpoint_usage"`
}

// ComputeReport builds a Report from terminal tasks. numEndpoints sizes the
// usage histogram; percentiles selects the reported set (nil falls back to
// DefaultPercentiles). Mean and percentiles are NaN when no task was
// dispatched.
func ComputeReport(tasks []*Task, numEndpoints int, percentiles []float64) *Report {
	if len(percentiles) == 0 {
		percentiles = DefaultPercentiles
	}

	r := &Report{
		TotalTasks:    len(tasks),
		EndpointUsage: make(map[int]int, numEndpoints),
	}
	for id := 1; id <= numEndpoints; id++ {
		r.EndpointUsage[id] = 0
	}

	delays := make([]int64, 0, len(tasks))
	for _, t := range tasks {
		switch t.State {
		case StateCompleted:
			r.Completed++
			r.EndpointUsage[t.EndpointID]++
			delays = append(delays, t.QueueingDelay())
		case StateFailed:
			r.Failed++
			delays = append(delays, t.QueueingDelay())
		case StateRejected:
			r.Rejected++
		}
	}

	sorted := SortedFloats(delays)
	r.MeanDelay = stat.Mean(sorted, nil)
	r.StdDevDelay = stat.StdDev(sorted, nil)

	r.Percentiles = make([]PercentileValue, 0, len(percentiles))
	for _, p := range percentiles {
		r.Percentiles = append(r.Percentiles, PercentileValue{
			Percentile: p,
			Value:      CalculatePercentile(sorted, p),
		})
	}
	return r
}

// Print displays the aggregated report at the end of the simulation.
func (r *Report) Print() {
	fmt.Println("=== Simulation Report ===")
	fmt.Printf("Total Tasks          : %d\n", r.TotalTasks)
	fmt.Printf("Completed            : %d\n", r.Completed)
	fmt.Printf("Rejected             : %d\n", r.Rejected)
	fmt.Printf("Failed               : %d\n", r.Failed)
	if !math.IsNaN(r.MeanDelay) {
		fmt.Printf("Mean Queueing Delay  : %.2f ticks\n", r.MeanDelay)
		for _, pv := range r.Percentiles {
			fmt.Printf("P%-2.0f Queueing Delay   : %.2f ticks\n", pv.Percentile, pv.Value)
		}
	}

	ids := make([]int, 0, len(r.EndpointUsage))
	for id := range r.EndpointUsage {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		fmt.Printf("Endpoint %d Usage     : %d\n", id, r.EndpointUsage[id])
	}
}
