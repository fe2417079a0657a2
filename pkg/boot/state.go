// Package boot performs the one-time, order-sensitive process startup and
// teardown that must happen before and after everything else in the
// platform layer: standard descriptor sanitization, signal disposition,
// stack guard installation and argument capture.
//
// Init and Cleanup are process-wide and must each be invoked exactly
// once, from the single goroutine driving process entry and exit. The
// package does not guard against concurrent use with a lock; the
// bootstrap window is single-threaded by contract. The lifecycle state
// word exists to detect contract violations, which are fatal, not to
// synchronize callers.
package boot

import (
	"fmt"
	"os"
	"sync/atomic"
)

// State is the position of the process in the bootstrap lifecycle.
type State int32

const (
	StateUninitialized State = iota
	StateInitializing
	StateReady
	StateTearingDown
	StateTerminated

	// StateAborted is absorbing: it is entered on a fatal violation and
	// never left.
	StateAborted
)

var stateNames = map[State]string{
	StateUninitialized: "uninitialized",
	StateInitializing:  "initializing",
	StateReady:         "ready",
	StateTearingDown:   "tearing down",
	StateTerminated:    "terminated",
	StateAborted:       "aborted",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}

	return fmt.Sprintf("state(%d)", int32(s))
}

// bootstrapState is the single process-wide bootstrap value. It has one
// writer, the bootstrap goroutine, and is read-only once Ready, so no
// locking applies. No other component may reconstruct or duplicate it.
type bootstrapState struct {
	args  []string
	guard []byte
}

var (
	bootstrap bootstrapState
	state     atomic.Int32
)

// Current reports the lifecycle state, for diagnostics.
func Current() State {
	return State(state.Load())
}

// Args returns a copy of the argument vector snapshot taken by Init, or
// nil unless the process is Ready.
func Args() []string {
	if Current() != StateReady {
		return nil
	}

	return append([]string(nil), bootstrap.args...)
}

func transition(from, to State) bool {
	return state.CompareAndSwap(int32(from), int32(to))
}

func mustTransition(from, to State) {
	if !transition(from, to) {
		fatalf("lifecycle transition %s -> %s attempted in state %s", from, to, Current())
	}
}

var abortProcess = platformAbort

// Abort terminates the process immediately without unwinding. It is the
// only exit for invariant violations after which the safety guarantees
// for later code no longer hold.
func Abort() {
	state.Store(int32(StateAborted))
	abortProcess()
	panic("boot: abort returned")
}

// fatalf reports a fatal bootstrap violation and aborts. Fatal paths are
// loud on stderr so they are distinguishable from ordinary recoverable
// error returns.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "syspal: fatal bootstrap violation: "+format+"\n", args...)
	Abort()
}
