package ride

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEntity_StartsPending(t *testing.T) {
	e := NewEntity(7, 120)
	assert.Equal(t, 7, e.ID)
	assert.Equal(t, 120.0, e.ArrivalTime)
	assert.Equal(t, StatePending, e.State)
	assert.Zero(t, e.ServiceStartTime)
	assert.Zero(t, e.ServiceEndTime)
}

func TestEntity_DerivedTimes_FollowTimestamps(t *testing.T) {
	// GIVEN an entity that waited 50s and then spent a full cycle in service
	e := NewEntity(1, 100)
	e.ServiceStartTime = 150
	e.ServiceEndTime = 150 + CycleDuration

	assert.Equal(t, 50.0, e.WaitTime())
	assert.Equal(t, 50+CycleDuration, e.SystemTime())

	// WHEN a timestamp is corrected, THEN the derived values follow
	e.ServiceStartTime = 160
	assert.Equal(t, 60.0, e.WaitTime())
}

func TestEntity_String_IncludesState(t *testing.T) {
	e := NewEntity(3, 1)
	assert.Contains(t, e.String(), "pending")
	assert.Contains(t, e.String(), "ID: 3")
}
