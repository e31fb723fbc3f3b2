// Defines the Entity struct that models one visitor passing through the ride queue.
// Tracks arrival, service-start, and service-end times; wait and system times are derived.

package ride

import "fmt"

// EntityState represents the lifecycle state of an entity.
type EntityState string

const (
	StatePending   EntityState = "pending"    // waiting for the resource
	StateInService EntityState = "in_service" // holding the resource (boarding or riding)
	StateDone      EntityState = "done"       // service completed and resource released
)

// Entity is a passive record of one simulated visitor.
// It is mutated exactly twice by its own service process: on admission and on completion.
type Entity struct {
	ID               int         // unique, monotonically assigned from 1
	ArrivalTime      float64     // seconds
	ServiceStartTime float64     // seconds; zero until admitted
	ServiceEndTime   float64     // seconds; zero until completed
	State            EntityState // pending, in_service, done
}

// NewEntity creates a pending entity that arrived at arrivalTime.
func NewEntity(id int, arrivalTime float64) *Entity {
	return &Entity{
		ID:          id,
		ArrivalTime: arrivalTime,
		State:       StatePending,
	}
}

// WaitTime is the time spent between arrival and service start.
// Only meaningful once the entity has been admitted.
func (e *Entity) WaitTime() float64 {
	return e.ServiceStartTime - e.ArrivalTime
}

// SystemTime is the time spent between arrival and service completion.
// Only meaningful once the entity is done.
func (e *Entity) SystemTime() float64 {
	return e.ServiceEndTime - e.ArrivalTime
}

// String returns a human-readable representation of the entity.
func (e Entity) String() string {
	return fmt.Sprintf("Entity: (ID: %d, State: %s, ArrivalTime: %.3f)", e.ID, e.State, e.ArrivalTime)
}

// QueueLengthSample is the number of entities waiting or in service,
// observed at an arrival instant before the arriving entity requests the resource.
type QueueLengthSample struct {
	Time   float64 `json:"time"`
	Length int     `json:"length"`
}
