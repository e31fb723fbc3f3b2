// Package stats aggregates a finished ride run into a statistics record.
// Collect is a pure view over its input: nothing is mutated.
package stats

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ridequeue/ridequeue-sim/sim/ride"
)

// ErrEmptyResultSet is returned by Collect when no entity completed service.
// The accompanying Result still carries counts and raw samples.
var ErrEmptyResultSet = errors.New("no entity completed service")

// Input is everything the collector needs from a finished run.
type Input struct {
	Label         string
	Description   string
	Completed     []*ride.Entity
	Admitted      []*ride.Entity
	Samples       []ride.QueueLengthSample
	Arrived       int
	FinalTime     float64 // seconds
	CycleDuration float64 // seconds
}

// InputFrom adapts a ride.Outcome.
func InputFrom(o *ride.Outcome) Input {
	return Input{
		Label:         o.Scenario.Label,
		Description:   o.Scenario.Description,
		Completed:     o.Completed,
		Admitted:      o.Admitted,
		Samples:       o.Samples,
		Arrived:       o.Arrived,
		FinalTime:     o.FinalTime,
		CycleDuration: o.CycleDuration,
	}
}

// Summary captures the spread of a per-entity metric, in seconds.
type Summary struct {
	Mean   float64 `json:"mean"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"stddev"` // sample standard deviation; 0 for a single observation
	Count  int     `json:"count"`
}

// NewSummary computes a Summary from raw values.
// Returns zero-value Summary for empty input.
func NewSummary(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	s := Summary{
		Mean:  stat.Mean(values, nil),
		Min:   floats.Min(values),
		Max:   floats.Max(values),
		Count: len(values),
	}
	if len(values) > 1 {
		s.StdDev = stat.StdDev(values, nil)
	}
	return s
}

// Result is the statistics record handed to reporting layers.
type Result struct {
	Scenario        string  `json:"scenario"`
	Description     string  `json:"description"`
	SimulationHours float64 `json:"simulation_hours"`

	ClientsArrived       int `json:"clients_arrived"`
	ClientsCompleted     int `json:"clients_completed"`
	ClientsInService     int `json:"clients_in_service"`      // admitted but not completed
	ClientsStillInSystem int `json:"clients_still_in_system"` // arrived but not completed

	WaitTime   Summary `json:"wait_time"`
	SystemTime Summary `json:"system_time"`

	QueueLengthMax  int     `json:"queue_length_max"`
	QueueLengthMean float64 `json:"queue_length_mean"`

	ThroughputPerHour  float64 `json:"throughput_per_hour"`
	UtilizationPercent float64 `json:"utilization_percent"`

	WaitTimes    []float64                `json:"wait_times"`
	QueueSamples []ride.QueueLengthSample `json:"queue_samples"`
}

// Collect computes the statistics record for in.
// With zero completed entities it returns ErrEmptyResultSet together with a
// Result holding only the counters and raw samples.
func Collect(in Input) (*Result, error) {
	r := &Result{
		Scenario:             in.Label,
		Description:          in.Description,
		SimulationHours:      in.FinalTime / 3600,
		ClientsArrived:       in.Arrived,
		ClientsCompleted:     len(in.Completed),
		ClientsInService:     len(in.Admitted) - len(in.Completed),
		ClientsStillInSystem: in.Arrived - len(in.Completed),
		QueueSamples:         in.Samples,
		WaitTimes:            make([]float64, 0, len(in.Completed)),
	}
	if len(in.Completed) == 0 {
		return r, ErrEmptyResultSet
	}

	systemTimes := make([]float64, 0, len(in.Completed))
	for _, e := range in.Completed {
		r.WaitTimes = append(r.WaitTimes, e.WaitTime())
		systemTimes = append(systemTimes, e.SystemTime())
	}
	r.WaitTime = NewSummary(r.WaitTimes)
	r.SystemTime = NewSummary(systemTimes)

	if len(in.Samples) > 0 {
		total := 0
		for _, s := range in.Samples {
			total += s.Length
			if s.Length > r.QueueLengthMax {
				r.QueueLengthMax = s.Length
			}
		}
		r.QueueLengthMean = float64(total) / float64(len(in.Samples))
	}

	if in.FinalTime > 0 {
		completed := float64(len(in.Completed))
		r.ThroughputPerHour = completed / (in.FinalTime / 3600)
		r.UtilizationPercent = completed * in.CycleDuration / in.FinalTime * 100
	}
	return r, nil
}
