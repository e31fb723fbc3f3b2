// Package sim provides the discrete-event simulation kernel used by the ride-queue model.
//
// # Reading Guide
//
// Start with these files to understand the kernel:
//   - event.go: Event types that drive the simulation (callbacks and process resumptions)
//   - environment.go: the clock, the time-ordered event queue, and the run loop
//   - process.go: the suspension model (Process, Yield, Timeout)
//   - resource.go: the capacity-limited service point with a FIFO wait queue
//
// # Scheduling model
//
// Exactly one process runs at a time. A Process is an explicit state machine: each
// call to Step runs until the next suspension point and returns the Yield it waits
// on, or nil once the process has finished. The Environment resumes the process when
// the wait condition is satisfied (a Timeout elapses, or a Resource grants the request).
//
// Wake-ups scheduled for the same instant execute in the order they were scheduled,
// so a run is fully reproducible given a fixed seed and a fixed sequence of Schedule calls.
//
// Sub-packages build on the kernel:
//   - sim/workload/: inter-arrival interval samplers
//   - sim/ride/: the single-server ride model (arrival generator, service process)
//   - sim/stats/: statistics over a finished run
//   - sim/scenario/: scenario catalog and operating windows
//   - sim/trace/: optional lifecycle trace recording
package sim
