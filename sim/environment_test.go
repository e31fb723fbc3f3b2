package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironment_Run_ExecutesInTimestampOrder(t *testing.T) {
	// GIVEN callbacks scheduled out of order
	env := NewEnvironment()
	var got []float64
	record := func(e *Environment) { got = append(got, e.Now()) }
	for _, d := range []float64{30, 10, 20} {
		require.NoError(t, env.Schedule(d, record))
	}

	// WHEN the environment runs past all of them
	require.NoError(t, env.Run(100))

	// THEN they executed in nondecreasing time order and the clock sits at the horizon
	assert.Equal(t, []float64{10, 20, 30}, got)
	assert.Equal(t, 100.0, env.Now())
}

func TestEnvironment_Run_SameTimestampIsFIFO(t *testing.T) {
	// GIVEN many callbacks at the same instant
	env := NewEnvironment()
	var order []int
	for i := 0; i < 50; i++ {
		i := i
		require.NoError(t, env.Schedule(5, func(*Environment) { order = append(order, i) }))
	}

	require.NoError(t, env.Run(5))

	// THEN they ran in scheduling order
	for i, v := range order {
		if v != i {
			t.Fatalf("position %d: got callback %d, want %d (tie-break must be FIFO)", i, v, i)
		}
	}
	assert.Len(t, order, 50)
}

func TestEnvironment_Run_HorizonIsInclusive(t *testing.T) {
	env := NewEnvironment()
	ran := map[float64]bool{}
	for _, d := range []float64{10, 10.5} {
		d := d
		require.NoError(t, env.Schedule(d, func(*Environment) { ran[d] = true }))
	}

	require.NoError(t, env.Run(10))

	assert.True(t, ran[10], "wake-up at exactly the horizon must run")
	assert.False(t, ran[10.5], "wake-up past the horizon must not run")
	assert.Equal(t, 1, env.Pending())
}

func TestEnvironment_Run_ZeroHorizon(t *testing.T) {
	// GIVEN a callback at t=1
	env := NewEnvironment()
	ran := false
	require.NoError(t, env.Schedule(1, func(*Environment) { ran = true }))

	// WHEN run with a zero horizon
	require.NoError(t, env.Run(0))

	// THEN nothing executes
	assert.False(t, ran)
	assert.Equal(t, 0.0, env.Now())
}

func TestEnvironment_Run_ClockNeverMovesBackward(t *testing.T) {
	// GIVEN callbacks that schedule more callbacks, including zero delays
	env := NewEnvironment()
	last := -1.0
	var chain func(*Environment)
	n := 0
	chain = func(e *Environment) {
		if e.Now() < last {
			t.Fatalf("clock moved backward: %v after %v", e.Now(), last)
		}
		last = e.Now()
		n++
		if n < 100 {
			require.NoError(t, e.Schedule(float64(n%3), chain))
		}
	}
	require.NoError(t, env.Schedule(0, chain))

	require.NoError(t, env.Run(1000))
	assert.Equal(t, 100, n)
}

func TestEnvironment_Schedule_NegativeDelay_ReturnsInvalidDelay(t *testing.T) {
	env := NewEnvironment()

	err := env.Schedule(-1, func(*Environment) {})
	assert.True(t, errors.Is(err, ErrInvalidDelay), "got %v", err)

	err = env.Schedule(math.NaN(), func(*Environment) {})
	assert.True(t, errors.Is(err, ErrInvalidDelay), "got %v", err)

	assert.Equal(t, 0, env.Pending(), "rejected delays must not be queued")
}

func TestEnvironment_Run_HorizonBeforeNow_ReturnsInvalidHorizon(t *testing.T) {
	env := NewEnvironment()
	require.NoError(t, env.Run(50))

	err := env.Run(10)
	assert.True(t, errors.Is(err, ErrInvalidHorizon), "got %v", err)
}

func TestEnvironment_Run_ResumesAcrossCalls(t *testing.T) {
	// GIVEN callbacks on both sides of a first horizon
	env := NewEnvironment()
	var got []float64
	record := func(e *Environment) { got = append(got, e.Now()) }
	require.NoError(t, env.Schedule(5, record))
	require.NoError(t, env.Schedule(15, record))

	// WHEN run in two legs
	require.NoError(t, env.Run(10))
	assert.Equal(t, []float64{5}, got)
	require.NoError(t, env.Run(20))

	// THEN the second leg picks up the remaining wake-up
	assert.Equal(t, []float64{5, 15}, got)
}

func TestEnvironment_Run_NonFiniteHorizon_ReturnsInvalidHorizon(t *testing.T) {
	// GIVEN a self-rescheduling callback that would never run out of work
	env := NewEnvironment()
	var tick func(*Environment)
	tick = func(e *Environment) { _ = e.Schedule(1, tick) }
	require.NoError(t, env.Schedule(0, tick))

	for _, until := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		err := env.Run(until)
		assert.True(t, errors.Is(err, ErrInvalidHorizon), "until=%v: got %v", until, err)
	}
	assert.Equal(t, 0.0, env.Now())
	assert.Equal(t, 1, env.Pending(), "nothing may execute for a rejected horizon")
}
