package trace

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions captures all admission and dispatch decisions.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// SimulationTrace collects decision records during a run.
type SimulationTrace struct {
	Level      TraceLevel
	Admissions []AdmissionRecord
	Dispatches []DispatchRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(level TraceLevel) *SimulationTrace {
	return &SimulationTrace{
		Level:      level,
		Admissions: make([]AdmissionRecord, 0),
		Dispatches: make([]DispatchRecord, 0),
	}
}

// Enabled reports whether decision records should be collected.
func (st *SimulationTrace) Enabled() bool {
	return st.Level == TraceLevelDecisions
}

// RecordAdmission appends an admission decision record.
func (st *SimulationTrace) RecordAdmission(record AdmissionRecord) {
	st.Admissions = append(st.Admissions, record)
}

// RecordDispatch appends a dispatch decision record.
func (st *SimulationTrace) RecordDispatch(record DispatchRecord) {
	st.Dispatches = append(st.Dispatches, record)
}
