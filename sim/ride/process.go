package ride

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/ridequeue/ridequeue-sim/sim"
	"github.com/ridequeue/ridequeue-sim/sim/trace"
)

// MinInterArrival floors every inter-arrival draw so the generator never asks
// the scheduler for a zero or negative delay.
const MinInterArrival = 1.0

// arrivalProcess generates entities forever; it is abandoned at the horizon.
// Its single state is "waiting for the next arrival"; started distinguishes
// the first Step (nothing has arrived yet) from resumptions.
type arrivalProcess struct {
	m       *Model
	started bool
}

func (a *arrivalProcess) Step(env *sim.Environment) sim.Yield {
	if a.started {
		a.m.arrive(env)
	}
	a.started = true
	interval := math.Max(MinInterArrival, a.m.sampler.Sample(a.m.rng))
	return sim.Timeout(interval)
}

// servicePhase is the position of a service process in its state machine.
type servicePhase int

const (
	phaseRequest  servicePhase = iota // about to request the resource
	phaseBoarding                     // admitted; boarding/disembarking
	phaseRiding                       // ride in progress
	phaseDone                         // ride over; release and record
)

// serviceProcess carries one entity through PENDING -> IN_SERVICE -> DONE.
type serviceProcess struct {
	m      *Model
	entity *Entity
	phase  servicePhase
}

func (s *serviceProcess) String() string {
	return fmt.Sprintf("service(%d)", s.entity.ID)
}

func (s *serviceProcess) Step(env *sim.Environment) sim.Yield {
	switch s.phase {
	case phaseRequest:
		s.phase = phaseBoarding
		return s.m.resource.Request()

	case phaseBoarding:
		s.m.admit(env, s.entity)
		s.phase = phaseRiding
		return sim.Timeout(s.m.cfg.BoardingDuration)

	case phaseRiding:
		s.phase = phaseDone
		return sim.Timeout(s.m.cfg.RideDuration)

	default:
		s.entity.ServiceEndTime = env.Now()
		s.entity.State = StateDone
		if err := s.m.resource.Release(env, s); err != nil {
			panic(fmt.Sprintf("service(%d): %v", s.entity.ID, err))
		}
		s.m.complete(env, s.entity)
		return nil
	}
}

// arrive creates the next entity, samples the queue length, and spawns its service process.
func (m *Model) arrive(env *sim.Environment) {
	m.nextID++
	e := NewEntity(m.nextID, env.Now())
	length := m.resource.QueueLen() + m.resource.Count()
	m.samples = append(m.samples, QueueLengthSample{Time: env.Now(), Length: length})
	m.trace.RecordArrival(trace.ArrivalRecord{EntityID: e.ID, Clock: env.Now(), QueueLength: length})
	logrus.Infof("<< Arrival: entity %d at %.1fs (queue %d)", e.ID, env.Now(), length)

	env.Process(&serviceProcess{m: m, entity: e})
}

// admit records the entity's service start.
func (m *Model) admit(env *sim.Environment, e *Entity) {
	e.ServiceStartTime = env.Now()
	e.State = StateInService
	m.admitted = append(m.admitted, e)
	m.trace.RecordAdmission(trace.AdmissionRecord{
		EntityID: e.ID,
		Clock:    env.Now(),
		Waited:   e.WaitTime(),
		Holders:  m.resource.Count(),
		Capacity: m.resource.Capacity(),
	})
	logrus.Infof("[%6.1fs] Entity %3d started service (waited %5.1fs)", env.Now(), e.ID, e.WaitTime())
}

// complete records the entity as served.
func (m *Model) complete(env *sim.Environment, e *Entity) {
	m.completed = append(m.completed, e)
	m.trace.RecordCompletion(trace.CompletionRecord{EntityID: e.ID, Clock: env.Now(), SystemTime: e.SystemTime()})
	logrus.Infof("[%6.1fs] Entity %3d finished service (system time %5.1fs)", env.Now(), e.ID, e.SystemTime())
}
