package trace

// TraceLevel controls the verbosity of lifecycle tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelEvents captures every arrival, admission, and completion.
	TraceLevelEvents TraceLevel = "events"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:   true,
	TraceLevelEvents: true,
	"":               true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// SimulationTrace collects lifecycle records during a run.
// A nil *SimulationTrace is valid and records nothing.
type SimulationTrace struct {
	Level       TraceLevel
	Arrivals    []ArrivalRecord
	Admissions  []AdmissionRecord
	Completions []CompletionRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
// Returns nil for TraceLevelNone so callers can skip the allocation.
func NewSimulationTrace(level TraceLevel) *SimulationTrace {
	if level == TraceLevelNone || level == "" {
		return nil
	}
	return &SimulationTrace{
		Level:       level,
		Arrivals:    make([]ArrivalRecord, 0),
		Admissions:  make([]AdmissionRecord, 0),
		Completions: make([]CompletionRecord, 0),
	}
}

// RecordArrival appends an arrival record.
func (st *SimulationTrace) RecordArrival(record ArrivalRecord) {
	if st == nil {
		return
	}
	st.Arrivals = append(st.Arrivals, record)
}

// RecordAdmission appends an admission record.
func (st *SimulationTrace) RecordAdmission(record AdmissionRecord) {
	if st == nil {
		return
	}
	st.Admissions = append(st.Admissions, record)
}

// RecordCompletion appends a completion record.
func (st *SimulationTrace) RecordCompletion(record CompletionRecord) {
	if st == nil {
		return
	}
	st.Completions = append(st.Completions, record)
}
