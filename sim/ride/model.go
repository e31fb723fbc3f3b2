// Package ride models a single-server ride queue on top of the sim kernel.
//
// Visitors arrive with stochastic inter-arrival times, queue FIFO for a
// single-slot resource, and occupy it for a fixed two-phase service cycle
// (boarding, then the ride itself). The resource capacity models "one cycle in
// progress"; riders per cycle are not grouped into batches.
package ride

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/ridequeue/ridequeue-sim/sim"
	"github.com/ridequeue/ridequeue-sim/sim/scenario"
	"github.com/ridequeue/ridequeue-sim/sim/trace"
	"github.com/ridequeue/ridequeue-sim/sim/workload"
)

// Ride characteristics.
const (
	BoardingDuration = 180.0 // seconds, boarding and disembarking
	RideDuration     = 96.0  // seconds, 1min 36s
	CycleDuration    = BoardingDuration + RideDuration
	Capacity         = 1 // cycles in progress at a time
	// RidersPerCycle is the ride's nominal seating. Not modeled: each entity
	// occupies a full cycle.
	RidersPerCycle = 20
)

// ErrAlreadyRan is returned when Run is called twice on the same Model.
var ErrAlreadyRan = errors.New("model already ran")

// Config holds everything needed for one reproducible run.
type Config struct {
	Scenario         scenario.Config
	Horizon          float64 // seconds
	Seed             int64
	BoardingDuration float64
	RideDuration     float64
	Capacity         int
	TraceLevel       trace.TraceLevel
}

// DefaultConfig returns a Config with the ride's fixed durations and capacity.
func DefaultConfig(sc scenario.Config, horizon float64, seed int64) Config {
	return Config{
		Scenario:         sc,
		Horizon:          horizon,
		Seed:             seed,
		BoardingDuration: BoardingDuration,
		RideDuration:     RideDuration,
		Capacity:         Capacity,
		TraceLevel:       trace.TraceLevelNone,
	}
}

// CycleDuration returns the time one entity holds the resource.
func (c Config) CycleDuration() float64 {
	return c.BoardingDuration + c.RideDuration
}

// Validate checks durations, horizon, and the scenario.
func (c Config) Validate() error {
	if math.IsNaN(c.Horizon) || math.IsInf(c.Horizon, 0) || c.Horizon < 0 {
		return fmt.Errorf("horizon must be finite and non-negative, got %v", c.Horizon)
	}
	if c.BoardingDuration < 0 || c.RideDuration < 0 {
		return fmt.Errorf("durations must be non-negative, got boarding=%v ride=%v", c.BoardingDuration, c.RideDuration)
	}
	if !trace.IsValidTraceLevel(string(c.TraceLevel)) {
		return fmt.Errorf("unknown trace level %q", c.TraceLevel)
	}
	return c.Scenario.Validate()
}

// Outcome is the final state of a run, handed to the statistics collector.
type Outcome struct {
	Scenario      scenario.Config
	Arrived       int        // entities created
	Admitted      []*Entity  // in admission order, including those still in service
	Completed     []*Entity  // in completion order
	Samples       []QueueLengthSample
	FinalTime     float64
	CycleDuration float64
	Capacity      int
	InService     int // resource holders at the horizon
	Waiting       int // pending requests at the horizon
	Trace         *trace.SimulationTrace
}

// Model wires the environment, the resource, and the arrival generator.
type Model struct {
	cfg      Config
	env      *sim.Environment
	resource *sim.Resource
	sampler  workload.IntervalSampler
	rng      *rand.Rand
	trace    *trace.SimulationTrace

	nextID    int
	admitted  []*Entity
	completed []*Entity
	samples   []QueueLengthSample
	ran       bool
}

// NewModel validates cfg and builds a ready-to-run Model.
func NewModel(cfg Config) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	resource, err := sim.NewResource(cfg.Capacity)
	if err != nil {
		return nil, err
	}
	sampler, err := cfg.Scenario.Sampler()
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", cfg.Scenario.Label, err)
	}

	return &Model{
		cfg:       cfg,
		env:       sim.NewEnvironment(),
		resource:  resource,
		sampler:   sampler,
		rng:       sim.NewSimulationKey(cfg.Seed).NewArrivalRNG(),
		trace:     trace.NewSimulationTrace(cfg.TraceLevel),
		admitted:  make([]*Entity, 0),
		completed: make([]*Entity, 0),
		samples:   make([]QueueLengthSample, 0),
	}, nil
}

// Run starts the arrival generator and runs the environment to the horizon.
func (m *Model) Run() (*Outcome, error) {
	if m.ran {
		return nil, ErrAlreadyRan
	}
	m.ran = true

	logrus.Infof("Starting scenario %q: mean inter-arrival %.1fs (stddev %.1fs), horizon %.0fs, seed %d",
		m.cfg.Scenario.Label, m.cfg.Scenario.MeanInterArrival, m.cfg.Scenario.InterArrivalStdDev, m.cfg.Horizon, m.cfg.Seed)

	m.env.Process(&arrivalProcess{m: m})
	if err := m.env.Run(m.cfg.Horizon); err != nil {
		return nil, fmt.Errorf("scenario %q: %w", m.cfg.Scenario.Label, err)
	}

	return &Outcome{
		Scenario:      m.cfg.Scenario,
		Arrived:       m.nextID,
		Admitted:      m.admitted,
		Completed:     m.completed,
		Samples:       m.samples,
		FinalTime:     m.env.Now(),
		CycleDuration: m.cfg.CycleDuration(),
		Capacity:      m.resource.Capacity(),
		InService:     m.resource.Count(),
		Waiting:       m.resource.QueueLen(),
		Trace:         m.trace,
	}, nil
}

// Run builds a Model from cfg and runs it.
func Run(cfg Config) (*Outcome, error) {
	m, err := NewModel(cfg)
	if err != nil {
		return nil, err
	}
	return m.Run()
}
