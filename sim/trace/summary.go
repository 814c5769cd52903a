package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalAdmissions int
	AdmittedCount   int
	RejectedCount   int
	FastPathCount   int

	TotalDispatches int
	GrantedCount    int
	ExhaustedCount  int
	MaxQueueLen     int

	// EndpointDistribution maps endpoint ID → count of granted dispatches.
	EndpointDistribution map[int]int
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		EndpointDistribution: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalAdmissions = len(st.Admissions)
	for _, a := range st.Admissions {
		if a.Admitted {
			summary.AdmittedCount++
		} else {
			summary.RejectedCount++
		}
		if a.Reason == ReasonFastPath {
			summary.FastPathCount++
		}
		if a.QueueLen > summary.MaxQueueLen {
			summary.MaxQueueLen = a.QueueLen
		}
	}

	summary.TotalDispatches = len(st.Dispatches)
	for _, d := range st.Dispatches {
		if d.Granted {
			summary.GrantedCount++
			summary.EndpointDistribution[d.EndpointID]++
		} else {
			summary.ExhaustedCount++
		}
	}

	return summary
}
