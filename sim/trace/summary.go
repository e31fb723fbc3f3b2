package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	Arrivals        int
	Admissions      int
	Completions     int
	PeakHolders     int
	PeakQueueLength int
	MeanWait        float64 // over admissions
	MaxWait         float64
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{}
	if st == nil {
		return summary
	}

	summary.Arrivals = len(st.Arrivals)
	summary.Admissions = len(st.Admissions)
	summary.Completions = len(st.Completions)

	for _, a := range st.Arrivals {
		if a.QueueLength > summary.PeakQueueLength {
			summary.PeakQueueLength = a.QueueLength
		}
	}

	if len(st.Admissions) > 0 {
		totalWait := 0.0
		for _, a := range st.Admissions {
			totalWait += a.Waited
			if a.Waited > summary.MaxWait {
				summary.MaxWait = a.Waited
			}
			if a.Holders > summary.PeakHolders {
				summary.PeakHolders = a.Holders
			}
		}
		summary.MeanWait = totalWait / float64(len(st.Admissions))
	}

	return summary
}
