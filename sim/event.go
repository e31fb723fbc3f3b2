package sim

import "github.com/sirupsen/logrus"

// Event defines the interface for all simulation events.
// Each event has a Timestamp (in simulated seconds) and an Execute method
// that advances simulation state when invoked.
type Event interface {
	Timestamp() float64
	Execute(*Environment)
}

// CallbackEvent runs an arbitrary function at its scheduled time.
// Created by Environment.Schedule.
type CallbackEvent struct {
	time float64
	fn   func(*Environment)
}

// Timestamp returns the scheduled time of the CallbackEvent.
func (e *CallbackEvent) Timestamp() float64 {
	return e.time
}

// Execute invokes the callback.
func (e *CallbackEvent) Execute(env *Environment) {
	e.fn(env)
}

// ResumeEvent hands control back to a suspended process.
// Scheduled when a process starts, when its Timeout elapses, and when a
// Resource grants its request.
type ResumeEvent struct {
	time    float64
	Process Process
}

// Timestamp returns the scheduled time of the ResumeEvent.
func (e *ResumeEvent) Timestamp() float64 {
	return e.time
}

// Execute steps the process to its next suspension point.
func (e *ResumeEvent) Execute(env *Environment) {
	logrus.Debugf("<< Resume: %T at %.3fs", e.Process, e.time)
	env.step(e.Process)
}
