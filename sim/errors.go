package sim

import "errors"

var (
	// ErrInvalidDelay is returned when a negative or NaN delay is scheduled.
	// It is never clamped: the caller owns any flooring policy.
	ErrInvalidDelay = errors.New("invalid delay")

	// ErrInvalidHorizon is returned by Run when the horizon is infinite, NaN, or before the current time.
	ErrInvalidHorizon = errors.New("invalid horizon")

	// ErrInvalidCapacity is returned by NewResource for capacities below 1.
	ErrInvalidCapacity = errors.New("invalid capacity")

	// ErrNotHolder is returned by Release when the caller does not hold the resource.
	ErrNotHolder = errors.New("process does not hold the resource")

	// ErrAlreadyRequested is raised when a process requests a resource it already holds or waits on.
	ErrAlreadyRequested = errors.New("process already holds or waits on the resource")
)
