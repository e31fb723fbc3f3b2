package workload

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGaussianSampler_MeanMatchesParam(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s, err := NewIntervalSampler(DistSpec{
		Type:   "gaussian",
		Params: map[string]float64{"mean": 120, "std_dev": 30},
	})
	require.NoError(t, err)

	n := 10000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += s.Sample(rng)
	}
	mean := sum / float64(n)
	if math.Abs(mean-120)/120 > 0.02 {
		t.Errorf("gaussian mean = %.2f, want ≈ 120 (within 2%%)", mean)
	}
	assert.Equal(t, 120.0, s.Mean())
}

func TestGaussianSampler_EmptyTypeDefaultsToGaussian(t *testing.T) {
	s, err := NewIntervalSampler(DistSpec{Params: map[string]float64{"mean": 30, "std_dev": 10}})
	require.NoError(t, err)
	_, ok := s.(*GaussianSampler)
	assert.True(t, ok, "empty type must build a GaussianSampler, got %T", s)
}

func TestGaussianSampler_MatchesNormFloat64Stream(t *testing.T) {
	// GIVEN a sampler and a generator with the same seed
	s := NewGaussianSampler(120, 30)
	a := rand.New(rand.NewSource(1))
	b := rand.New(rand.NewSource(1))

	// THEN each sample is exactly NormFloat64*stddev+mean
	for i := 0; i < 20; i++ {
		assert.Equal(t, b.NormFloat64()*30+120, s.Sample(a))
	}
}

func TestGaussianSampler_CanGoNegative(t *testing.T) {
	// A wide distribution produces raw non-positive draws; flooring is the caller's job.
	rng := rand.New(rand.NewSource(42))
	s := NewGaussianSampler(1, 50)
	sawNonPositive := false
	for i := 0; i < 1000; i++ {
		if s.Sample(rng) <= 0 {
			sawNonPositive = true
			break
		}
	}
	assert.True(t, sawNonPositive)
}

func TestExponentialSampler_MeanMatchesParam(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s, err := NewIntervalSampler(DistSpec{Type: "exponential", Params: map[string]float64{"mean": 60}})
	require.NoError(t, err)

	n := 20000
	sum := 0.0
	for i := 0; i < n; i++ {
		v := s.Sample(rng)
		if v < 0 {
			t.Fatalf("sample %d: got %v, want >= 0", i, v)
		}
		sum += v
	}
	mean := sum / float64(n)
	if math.Abs(mean-60)/60 > 0.05 {
		t.Errorf("exponential mean = %.2f, want ≈ 60 (within 5%%)", mean)
	}
}

func TestConstantSampler_AlwaysSameValue(t *testing.T) {
	s, err := NewIntervalSampler(DistSpec{Type: "constant", Params: map[string]float64{"mean": 45}})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		assert.Equal(t, 45.0, s.Sample(nil))
	}
}

func TestNewIntervalSampler_Errors(t *testing.T) {
	tests := []struct {
		name string
		spec DistSpec
	}{
		{"unknown type", DistSpec{Type: "weibull", Params: map[string]float64{"mean": 1}}},
		{"gaussian missing std_dev", DistSpec{Type: "gaussian", Params: map[string]float64{"mean": 1}}},
		{"gaussian negative std_dev", DistSpec{Type: "gaussian", Params: map[string]float64{"mean": 1, "std_dev": -1}}},
		{"exponential missing mean", DistSpec{Type: "exponential"}},
		{"exponential zero mean", DistSpec{Type: "exponential", Params: map[string]float64{"mean": 0}}},
		{"constant missing mean", DistSpec{Type: "constant"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewIntervalSampler(tt.spec)
			assert.Error(t, err)
		})
	}
}
