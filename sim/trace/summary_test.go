package trace

import "testing"

func TestSummarize_NilTrace_ZeroValues(t *testing.T) {
	summary := Summarize(nil)
	if *summary != (TraceSummary{}) {
		t.Errorf("expected zero summary, got %+v", summary)
	}
}

func TestSummarize_PopulatedTrace_CorrectCounts(t *testing.T) {
	// GIVEN a trace with three arrivals, two admissions, one completion
	st := NewSimulationTrace(TraceLevelEvents)
	st.RecordArrival(ArrivalRecord{EntityID: 1, Clock: 10, QueueLength: 0})
	st.RecordArrival(ArrivalRecord{EntityID: 2, Clock: 20, QueueLength: 1})
	st.RecordArrival(ArrivalRecord{EntityID: 3, Clock: 30, QueueLength: 2})
	st.RecordAdmission(AdmissionRecord{EntityID: 1, Clock: 10, Waited: 0, Holders: 1})
	st.RecordAdmission(AdmissionRecord{EntityID: 2, Clock: 286, Waited: 266, Holders: 1})
	st.RecordCompletion(CompletionRecord{EntityID: 1, Clock: 286, SystemTime: 276})

	// WHEN summarized
	summary := Summarize(st)

	// THEN counts and peaks match
	if summary.Arrivals != 3 || summary.Admissions != 2 || summary.Completions != 1 {
		t.Errorf("unexpected counts %+v", summary)
	}
	if summary.PeakQueueLength != 2 {
		t.Errorf("expected peak queue 2, got %d", summary.PeakQueueLength)
	}
	if summary.PeakHolders != 1 {
		t.Errorf("expected peak holders 1, got %d", summary.PeakHolders)
	}
	if summary.MeanWait != 133 {
		t.Errorf("expected mean wait 133, got %v", summary.MeanWait)
	}
	if summary.MaxWait != 266 {
		t.Errorf("expected max wait 266, got %v", summary.MaxWait)
	}
}
