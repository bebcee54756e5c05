// Package handoff implements the control transfer primitive beneath the
// routine runtime.
//
// Each Context stands for one flow of control that can be suspended and
// resumed. The runtime keeps at most one flow awake at any instant; the
// primitives in this package move that privilege between flows. A transfer is
// a synchronous rendezvous on an unbuffered channel, so the waker observes
// every write the parked flow made before suspending, and vice versa.
package handoff

// Context is the resumption handle for one flow of control. Create contexts
// with New; the zero value has nowhere to park.
type Context struct {
	c chan struct{}
}

// New returns a context with no flow parked on it.
func New() *Context {
	return &Context{c: make(chan struct{})}
}

// Park suspends the calling flow until another flow resumes c.
func (c *Context) Park() {
	<-c.c
}

// Resume wakes the flow parked on c, blocking until that flow has taken
// over. The caller must park or stop touching shared state immediately
// after; between the wake and its own park it no longer holds the runtime's
// attention.
func (c *Context) Resume() {
	c.c <- struct{}{}
}

// Swap transfers control from the calling flow to the one parked on to, and
// suspends the caller on from. It returns when some later transfer parks on
// to's side and resumes from — from the caller's point of view the call
// simply returns later, with any number of other flows having run in
// between.
func Swap(from, to *Context) {
	to.Resume()
	from.Park()
}
