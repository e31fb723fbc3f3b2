// sim/environment.go
package sim

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// eventEntry wraps an Event with a sequence ID for deterministic FIFO
// tie-breaking when timestamps are equal.
type eventEntry struct {
	event Event
	seqID int64
}

// EventQueue is a min-heap ordered by (Timestamp, seqID).
// Implements heap.Interface.
type EventQueue []eventEntry

func (q EventQueue) Len() int { return len(q) }

func (q EventQueue) Less(i, j int) bool {
	if q[i].event.Timestamp() != q[j].event.Timestamp() {
		return q[i].event.Timestamp() < q[j].event.Timestamp()
	}
	return q[i].seqID < q[j].seqID
}

func (q EventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *EventQueue) Push(x any) {
	*q = append(*q, x.(eventEntry))
}

func (q *EventQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// Environment holds simulation time, the pending wake-ups, and the event loop.
//
// Thread-safety: NOT thread-safe. The whole simulation runs on the caller's goroutine.
type Environment struct {
	clock   float64
	events  EventQueue
	nextSeq int64
	// number of started processes that have not returned a nil Yield yet
	active int
	// first fatal error raised by a suspension; stops the loop
	err error
}

// NewEnvironment creates an Environment with the clock at zero and no pending events.
func NewEnvironment() *Environment {
	return &Environment{
		events: make(EventQueue, 0),
	}
}

// Now returns the current simulated time in seconds.
func (env *Environment) Now() float64 {
	return env.clock
}

// Pending returns the number of scheduled wake-ups that have not executed yet.
func (env *Environment) Pending() int {
	return len(env.events)
}

// Active returns the number of started processes that have not finished.
// After Run returns, these are the processes abandoned at the horizon.
func (env *Environment) Active() int {
	return env.active
}

// Schedule registers fn to run at Now()+delay.
// Returns ErrInvalidDelay for negative or NaN delays.
func (env *Environment) Schedule(delay float64, fn func(*Environment)) error {
	at, err := env.at(delay)
	if err != nil {
		return err
	}
	env.push(&CallbackEvent{time: at, fn: fn})
	return nil
}

// Process starts p: its first Step runs at the current time, after every
// wake-up already scheduled for this instant.
func (env *Environment) Process(p Process) {
	env.active++
	logrus.Debugf("[t=%010.3f] Starting process %T", env.clock, p)
	env.push(&ResumeEvent{time: env.clock, Process: p})
}

// Run executes every scheduled wake-up with a timestamp <= until, in
// nondecreasing time order, then advances the clock to until.
// Processes still suspended at that point are abandoned.
// Returns the first suspension error (e.g. ErrInvalidDelay) raised by a process,
// in which case the clock stays at the failing event's time. An aborted
// Environment is dead: later calls return the same error without executing anything.
func (env *Environment) Run(until float64) error {
	if env.err != nil {
		return env.err
	}
	if math.IsNaN(until) || math.IsInf(until, 0) {
		return fmt.Errorf("%w: until=%v must be finite", ErrInvalidHorizon, until)
	}
	if until < env.clock {
		return fmt.Errorf("%w: until=%v is before now=%v", ErrInvalidHorizon, until, env.clock)
	}
	logrus.Infof("[t=%010.3f] Running until %.3fs with %d pending events", env.clock, until, len(env.events))

	for len(env.events) > 0 && env.events[0].event.Timestamp() <= until {
		ev := heap.Pop(&env.events).(eventEntry).event
		env.clock = ev.Timestamp()
		logrus.Debugf("[t=%010.3f] Executing %T", env.clock, ev)
		ev.Execute(env)
		if env.err != nil {
			logrus.Errorf("[t=%010.3f] Simulation aborted: %v", env.clock, env.err)
			return env.err
		}
	}
	env.clock = until

	logrus.Infof("[t=%010.3f] Simulation ended; %d processes abandoned, %d events discarded",
		env.clock, env.active, len(env.events))
	return nil
}

// at validates delay and returns the absolute wake-up time.
func (env *Environment) at(delay float64) (float64, error) {
	if delay < 0 || math.IsNaN(delay) {
		return 0, fmt.Errorf("%w: %v at t=%v", ErrInvalidDelay, delay, env.clock)
	}
	return env.clock + delay, nil
}

// push inserts ev with the next sequence ID.
func (env *Environment) push(ev Event) {
	heap.Push(&env.events, eventEntry{event: ev, seqID: env.nextSeq})
	env.nextSeq++
}

// resumeNow schedules p to continue at the current instant.
func (env *Environment) resumeNow(p Process) {
	env.push(&ResumeEvent{time: env.clock, Process: p})
}

// step runs p to its next suspension point and arms the returned Yield.
func (env *Environment) step(p Process) {
	y := p.Step(env)
	if y == nil {
		env.active--
		logrus.Debugf("[t=%010.3f] Process %T finished", env.clock, p)
		return
	}
	if err := y.suspend(env, p); err != nil && env.err == nil {
		env.err = err
	}
}
