// Package gls provides goroutine local storage for the routine runtime.
//
// The runtime pins each of its flows of control to a goroutine: the goroutine
// that built a runtime occupies its main slot, and every pooled slot owns one
// worker goroutine. Recording that occupancy per goroutine lets the runtime
// tell whether an operation is invoked from the flow it considers current, and
// refuse calls coming from unrelated goroutines.
package gls

import "sync"

// One entry per goroutine enrolled in a runtime. Contention is not a concern
// at this scale: entries are written once when a goroutine joins a runtime
// and read on the scheduling operations of a single awake flow.
var (
	gmutex sync.RWMutex
	gstate map[G]any
)

// G is a reference to a goroutine, and provides a way to load, store and
// clear a value local to it.
type G uintptr

// Current returns the reference to the calling goroutine.
func Current() G {
	return G(getg())
}

// Load returns the value stored for g, or nil if there is none.
func (g G) Load() any {
	gmutex.RLock()
	v := gstate[g]
	gmutex.RUnlock()
	return v
}

// Store records v as g's local value.
func (g G) Store(v any) {
	gmutex.Lock()
	if gstate == nil {
		gstate = make(map[G]any)
	}
	gstate[g] = v
	gmutex.Unlock()
}

// Clear removes g's local value.
func (g G) Clear() {
	gmutex.Lock()
	delete(gstate, g)
	gmutex.Unlock()
}
