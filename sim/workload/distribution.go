package workload

import (
	"fmt"
	"math/rand"
)

// IntervalSampler generates inter-arrival intervals in seconds.
// Samples are raw draws: callers apply their own floor (the ride model floors at 1s).
type IntervalSampler interface {
	Sample(rng *rand.Rand) float64
	// Mean returns the expected interval.
	Mean() float64
}

// GaussianSampler draws Normal(mean, stdDev) intervals.
type GaussianSampler struct {
	mean, stdDev float64
}

// NewGaussianSampler creates a GaussianSampler.
func NewGaussianSampler(mean, stdDev float64) *GaussianSampler {
	return &GaussianSampler{mean: mean, stdDev: stdDev}
}

func (s *GaussianSampler) Sample(rng *rand.Rand) float64 {
	return rng.NormFloat64()*s.stdDev + s.mean
}

func (s *GaussianSampler) Mean() float64 { return s.mean }

// ExponentialSampler draws exponentially-distributed intervals (Poisson arrivals).
type ExponentialSampler struct {
	mean float64
}

func (s *ExponentialSampler) Sample(rng *rand.Rand) float64 {
	return rng.ExpFloat64() * s.mean
}

func (s *ExponentialSampler) Mean() float64 { return s.mean }

// ConstantSampler always returns the same interval.
type ConstantSampler struct {
	value float64
}

func (s *ConstantSampler) Sample(_ *rand.Rand) float64 {
	return s.value
}

func (s *ConstantSampler) Mean() float64 { return s.value }

// DistSpec parameterizes an interval distribution.
type DistSpec struct {
	Type   string             `yaml:"type"`
	Params map[string]float64 `yaml:"params,omitempty"`
}

// ValidDistributions is the set of recognized distribution types.
// The empty string selects "gaussian".
var ValidDistributions = map[string]bool{"": true, "gaussian": true, "exponential": true, "constant": true}

// requireParam checks that all required keys exist in a params map.
func requireParam(params map[string]float64, keys ...string) error {
	for _, k := range keys {
		if _, ok := params[k]; !ok {
			return fmt.Errorf("distribution requires parameter %q", k)
		}
	}
	return nil
}

// NewIntervalSampler creates an IntervalSampler from a DistSpec.
func NewIntervalSampler(spec DistSpec) (IntervalSampler, error) {
	switch spec.Type {
	case "", "gaussian":
		if err := requireParam(spec.Params, "mean", "std_dev"); err != nil {
			return nil, err
		}
		if spec.Params["std_dev"] < 0 {
			return nil, fmt.Errorf("gaussian std_dev must be non-negative, got %f", spec.Params["std_dev"])
		}
		return NewGaussianSampler(spec.Params["mean"], spec.Params["std_dev"]), nil

	case "exponential":
		if err := requireParam(spec.Params, "mean"); err != nil {
			return nil, err
		}
		if spec.Params["mean"] <= 0 {
			return nil, fmt.Errorf("exponential mean must be positive, got %f", spec.Params["mean"])
		}
		return &ExponentialSampler{mean: spec.Params["mean"]}, nil

	case "constant":
		if err := requireParam(spec.Params, "mean"); err != nil {
			return nil, err
		}
		return &ConstantSampler{value: spec.Params["mean"]}, nil

	default:
		return nil, fmt.Errorf("unknown distribution type %q", spec.Type)
	}
}
