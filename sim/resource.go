// Implements the Resource, a capacity-limited service point.
// Requests are queued in arrival order and admitted strictly from the head.

package sim

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Resource grants access to at most Capacity concurrent holders.
// Pending requests wait in a FIFO queue: no priority, no reordering.
// A process is in at most one of {wait queue, holders} at a time.
type Resource struct {
	capacity int
	holders  []Process // current holders, in admission order
	queue    []Process // FIFO queue of pending requests
}

// NewResource creates a Resource with a fixed capacity.
// Returns ErrInvalidCapacity when capacity < 1.
func NewResource(capacity int) (*Resource, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &Resource{capacity: capacity}, nil
}

// Capacity returns the fixed number of slots.
func (r *Resource) Capacity() int {
	return r.capacity
}

// Count returns the number of current holders.
func (r *Resource) Count() int {
	return len(r.holders)
}

// QueueLen returns the number of pending requests.
func (r *Resource) QueueLen() int {
	return len(r.queue)
}

// Holds reports whether p currently holds a slot.
func (r *Resource) Holds(p Process) bool {
	return indexOf(r.holders, p) >= 0
}

// Request returns the Yield a process suspends on to acquire a slot.
// The process resumes as a holder once it reaches the head of the queue
// and a slot is free. There is no timeout: a request may wait until the horizon.
// Requesting again while holding or waiting aborts the run with ErrAlreadyRequested.
func (r *Resource) Request() Yield {
	return request{res: r}
}

// Release removes p from the holders and admits waiting requests into the freed slot.
// Admitted processes become holders immediately and resume at the current instant.
func (r *Resource) Release(env *Environment, p Process) error {
	idx := indexOf(r.holders, p)
	if idx < 0 {
		return fmt.Errorf("%w: %T", ErrNotHolder, p)
	}
	r.holders = append(r.holders[:idx], r.holders[idx+1:]...)
	r.admit(env)
	return nil
}

func (r *Resource) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Resource(capacity=%d, holders=%d, queue=[", r.capacity, len(r.holders))
	for i, p := range r.queue {
		sb.WriteString(fmt.Sprint(p))
		if i < len(r.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("])")
	return sb.String()
}

// admit moves requests from the head of the queue into free slots.
func (r *Resource) admit(env *Environment) {
	for len(r.holders) < r.capacity && len(r.queue) > 0 {
		next := r.queue[0]
		n := copy(r.queue, r.queue[1:])
		r.queue[n] = nil
		r.queue = r.queue[:n]
		r.holders = append(r.holders, next)
		logrus.Debugf("[t=%010.3f] Resource granted to %T (holders=%d, queue=%d)",
			env.Now(), next, len(r.holders), len(r.queue))
		env.resumeNow(next)
	}
}

// request enqueues the process at the tail and lets admit decide.
type request struct {
	res *Resource
}

func (q request) suspend(env *Environment, p Process) error {
	if indexOf(q.res.holders, p) >= 0 || indexOf(q.res.queue, p) >= 0 {
		return fmt.Errorf("%w: %T at t=%v", ErrAlreadyRequested, p, env.Now())
	}
	q.res.queue = append(q.res.queue, p)
	q.res.admit(env)
	return nil
}

func indexOf(ps []Process, p Process) int {
	for i, h := range ps {
		if h == p {
			return i
		}
	}
	return -1
}
