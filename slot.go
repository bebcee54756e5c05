package routine

import "github.com/routinekit/routine/internal/handoff"

// slotState tracks where a slot is in its lifecycle.
type slotState int

const (
	// idle: the slot is unoccupied and can be claimed by Go.
	idle slotState = iota
	// running: the slot's occupant is the one currently executing.
	running
	// ready: the occupant is suspended at a yield point, eligible to resume.
	ready
)

func (s slotState) String() string {
	switch s {
	case idle:
		return "idle"
	case running:
		return "running"
	case ready:
		return "ready"
	}
	return "invalid"
}

// slot is one execution context in a runtime's pool. Slot 0 is permanently
// bound to the goroutine that built the runtime and is never recycled; every
// other slot owns a pooled goroutine that parks between occupants, so the
// execution context a suspended routine lives on survives, unmoved, for the
// lifetime of the runtime.
type slot struct {
	index int
	state slotState
	ctx   *handoff.Context
	entry func()
}
