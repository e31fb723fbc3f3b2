// Package trace provides lifecycle-trace recording for the ride model.
// This package has no dependencies on sim/ or sim/ride/; it stores pure data types.
package trace

// ArrivalRecord captures one entity arriving at the queue.
type ArrivalRecord struct {
	EntityID    int
	Clock       float64
	QueueLength int // waiting + in service, observed before this arrival requests the resource
}

// AdmissionRecord captures one entity acquiring the resource.
type AdmissionRecord struct {
	EntityID int
	Clock    float64
	Waited   float64 // Clock minus the arrival time
	Holders  int     // holders right after this admission
	Capacity int
}

// CompletionRecord captures one entity finishing service.
type CompletionRecord struct {
	EntityID   int
	Clock      float64
	SystemTime float64 // Clock minus the arrival time
}
