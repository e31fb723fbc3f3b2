package sim

import "fmt"

// Process is a suspendable unit of execution driven by the Environment.
//
// Step runs the process from its current state up to the next suspension point
// and returns what it waits on. Returning nil finishes the process.
// Code inside a single Step runs atomically with respect to every other process.
// Implementations must be comparable (typically a pointer), since a Resource
// identifies its holders by Process value.
type Process interface {
	Step(env *Environment) Yield
}

// Yield is a wait condition a Process suspends on.
// The only conditions are a pure time delay (Timeout) and a resource
// acquisition (Resource.Request).
type Yield interface {
	suspend(env *Environment, p Process) error
}

// timeout resumes the process after a fixed delay.
type timeout struct {
	delay float64
}

// Timeout suspends the calling process for delay seconds.
// A negative delay aborts the run with ErrInvalidDelay.
func Timeout(delay float64) Yield {
	return timeout{delay: delay}
}

func (t timeout) suspend(env *Environment, p Process) error {
	at, err := env.at(t.delay)
	if err != nil {
		return fmt.Errorf("process %T: %w", p, err)
	}
	env.push(&ResumeEvent{time: at, Process: p})
	return nil
}
