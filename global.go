package routine

import "sync/atomic"

// handle is a once-settable pointer through which the package-level
// functions reach a published runtime.
type handle struct {
	r atomic.Pointer[Runtime]
}

func (h *handle) publish(r *Runtime) {
	if r == nil {
		panic("routine.Init: nil runtime")
	}
	if !h.r.CompareAndSwap(nil, r) {
		panic("routine.Init: runtime already published")
	}
}

func (h *handle) load() *Runtime {
	r := h.r.Load()
	if r == nil {
		panic("routine: runtime not published, call Init first")
	}
	return r
}

var global handle

// Init publishes r as the process-wide runtime, letting scheduled functions
// call Go and Yield without holding a reference to it. Init panics when
// called more than once; the published runtime cannot be replaced or
// cleared.
func Init(r *Runtime) {
	global.publish(r)
}

// Go schedules f on the published runtime. It panics if Init has not been
// called; see (*Runtime).Go for the scheduling contract.
func Go(f func()) {
	global.load().Go(f)
}

// Yield cedes control on the published runtime. It panics if Init has not
// been called; see (*Runtime).Yield for the switching contract.
func Yield() bool {
	return global.load().Yield()
}
