// Package routine implements a fixed-capacity pool of cooperatively scheduled
// routines multiplexed over a single flow of control.
//
// A Runtime owns an ordered pool of slots. Slot 0 belongs to the goroutine
// that built the runtime (the main context); the remaining slots each own a
// pooled goroutine that is reused across the functions scheduled onto it.
// Scheduling is strictly cooperative: exactly one routine executes at any
// instant, and control moves only when the running routine yields or returns.
// Because of that, the runtime's own state needs no locking, and two
// scheduled functions can share ordinary memory without synchronization as
// long as neither hands it to code outside the runtime.
//
// The pool has a fixed capacity: scheduling beyond it, like every other
// contract violation in this package, panics rather than degrading.
package routine

import (
	"fmt"

	"github.com/routinekit/routine/internal/gls"
	"github.com/routinekit/routine/internal/handoff"
)

// Runtime multiplexes routines over the fixed pool of slots created with it.
// Build one with New; its methods may only be called from the flow the
// runtime considers current, which is initially the goroutine that built it.
type Runtime struct {
	slots   []*slot
	current int
}

// New builds a runtime with capacity slots. The calling goroutine claims
// slot 0 and becomes the runtime's main context: Run must later be invoked
// from it. The other capacity-1 slots start idle, each backed by a parked
// goroutine awaiting its first occupant.
//
// A goroutine acts as the main context of at most one runtime at a time.
func New(capacity int) *Runtime {
	if capacity < 1 {
		panic("routine.New: capacity must be at least 1")
	}
	r := &Runtime{slots: make([]*slot, capacity)}
	for i := range r.slots {
		r.slots[i] = &slot{index: i, ctx: handoff.New()}
	}
	r.slots[0].state = running
	gls.Current().Store(r.slots[0])
	for _, s := range r.slots[1:] {
		go r.occupy(s)
	}
	return r
}

// Go claims an idle slot for f and marks it ready; f starts running at the
// next switch that reaches the slot. Go panics if every slot is occupied
// (the pool never grows), leaving all slot states untouched, and if f is
// nil. A routine may itself call Go to schedule more work.
//
// A panic inside f is not confined to its routine: it unwinds the slot's
// goroutine and crashes the process, as any unrecovered panic does.
func (r *Runtime) Go(f func()) {
	if f == nil {
		panic("routine.Go: nil function")
	}
	r.running("routine.Go")
	for _, s := range r.slots[1:] {
		if s.state == idle {
			s.entry = f
			s.state = ready
			return
		}
	}
	panic(fmt.Sprintf("routine.Go: no idle slot (capacity %d)", len(r.slots)))
}

// Yield cedes control to the next ready slot, scanning the pool circularly
// from the slot after the caller's. It reports whether a switch took place:
// when nothing else is ready it returns false and the caller keeps running,
// with no state touched. When a switch does happen, Yield returns true only
// once some later switch resumes the caller.
func (r *Runtime) Yield() bool {
	self := r.running("routine.Yield")
	next := r.nextReady(self.index)
	if next == nil {
		return false
	}
	self.state = ready
	next.state = running
	r.current = next.index
	handoff.Swap(self.ctx, next.ctx)
	return true
}

// Run drives the runtime from its main context until no slot is ready
// anywhere, that is until every scheduled function has returned. Functions
// scheduled after Run returns are picked up by calling it again.
func (r *Runtime) Run() {
	for r.Yield() {
	}
}

// occupy is the loop run by each pooled goroutine. The initial Park absorbs
// the first switch into the slot, so that switching into a fresh occupant
// behaves exactly like resuming one suspended at a yield point; when the
// occupant returns, finish hands control away and the loop parks again
// awaiting reuse.
func (r *Runtime) occupy(s *slot) {
	gls.Current().Store(s)
	for {
		s.ctx.Park()
		s.entry()
		r.finish(s)
	}
}

// finish retires s after its occupant returned, making the slot claimable by
// Go again, and resumes the next ready slot. Slot 0 never idles, so the scan
// cannot come back empty here. The handoff is one-way: this flow's next act
// is parking in occupy, after the resumed routine already took over.
func (r *Runtime) finish(s *slot) {
	s.state = idle
	s.entry = nil
	next := r.nextReady(s.index)
	if next == nil {
		panic("routine: routine finished with no resumable slot")
	}
	next.state = running
	r.current = next.index
	next.ctx.Resume()
}

// nextReady returns the first ready slot in circular order after from, or
// nil if the full scan finds none.
func (r *Runtime) nextReady(from int) *slot {
	for i := 1; i < len(r.slots); i++ {
		if s := r.slots[(from+i)%len(r.slots)]; s.state == ready {
			return s
		}
	}
	return nil
}

// running returns the current slot, panicking unless the calling goroutine
// is the flow occupying it. Scheduling operations invoked from a goroutine
// the runtime does not know about would mutate the pool while a routine owns
// it; refusing them keeps the corruption diagnosable.
func (r *Runtime) running(op string) *slot {
	self := r.slots[r.current]
	if s, _ := gls.Current().Load().(*slot); s != self {
		panic(op + ": not called from the running routine")
	}
	return self
}
