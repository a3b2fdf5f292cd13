package skeleton

import "fmt"

// invariantf panics on a programmer-error invariant violation: a vertex
// record accessed through the wrong variant's accessor, or an event
// firing against a shape the simulation driver should never produce.
// These are not user-facing failures — the core reports no errors from
// its public API and is total under valid input — so a panic, not a
// returned error, is the correct signal.
func invariantf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}
