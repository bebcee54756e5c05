package gls

// getg returns the address of the current goroutine's runtime.g, like the
// compiler intrinsic runtime.getg. The address is stable for the lifetime of
// the goroutine, which makes it a usable map key.
//
// Implemented in assembly for the supported architectures.
func getg() uintptr
