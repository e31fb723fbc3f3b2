package sim

import "math/rand"

// SimulationKey uniquely identifies a reproducible simulation run.
// Two runs with the same SimulationKey, scenario, and horizon
// MUST produce bit-for-bit identical results.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// NewArrivalRNG returns a fresh generator for inter-arrival draws, seeded with
// the key directly so --seed maps one-to-one onto the arrival stream.
// Each call returns an independent instance; callers own it.
//
// Thread-safety: NOT thread-safe. Must be used from a single goroutine.
func (k SimulationKey) NewArrivalRNG() *rand.Rand {
	return rand.New(rand.NewSource(int64(k)))
}
