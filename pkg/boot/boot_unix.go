//go:build unix

package boot

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// Init performs one-time process bootstrap. It must be invoked exactly
// once, before any other part of the platform layer is used and before
// user code spawns goroutines, from the goroutine driving process entry.
//
// The steps are order-sensitive: standard descriptors are sanitized first
// so no file opened later can alias a standard stream, the SIGPIPE
// disposition changes before any writer can exist, then the stack guard
// is installed and the argument vector snapshotted. The process reaches
// Ready only after all four steps succeed; there is no partial-Ready.
//
// On native backends Init never returns a recoverable error: it succeeds
// or aborts the process.
func Init(args []string) error {
	if !transition(StateUninitialized, StateInitializing) {
		fatalf("Init invoked more than once")
	}

	sanitizeStdio()
	ignoreSIGPIPE()
	installStackGuard()
	captureArgs(args)

	mustTransition(StateInitializing, StateReady)

	return nil
}

// Cleanup releases bootstrap resources in reverse acquisition order. It
// must be invoked exactly once, after all user code has finished, on the
// goroutine unwinding to exit. It is not guaranteed to run on abrupt
// termination, so nothing externally observable may depend on it. The
// SIGPIPE disposition is left as-is; the process is exiting.
func Cleanup() error {
	if !transition(StateReady, StateTearingDown) {
		fatalf("Cleanup invoked before Ready or more than once")
	}

	releaseArgs()
	releaseStackGuard()

	mustTransition(StateTearingDown, StateTerminated)

	return nil
}

// ignoreSIGPIPE makes writes to a closed peer surface as a recoverable
// broken-pipe error instead of terminating the process. The change is
// process-global and is never undone.
func ignoreSIGPIPE() {
	signal.Ignore(syscall.SIGPIPE)
}

// captureArgs snapshots the argument vector into process-owned storage.
// The vector handed to the entry stub has no validity guarantee beyond
// entry.
func captureArgs(args []string) {
	bootstrap.args = append([]string(nil), args...)
}

func releaseArgs() {
	bootstrap.args = nil
}

func platformAbort() {
	// SIGABRT first: shells and debuggers report an abort trap, which
	// carries more information than a bare exit status.
	_ = unix.Kill(unix.Getpid(), unix.SIGABRT)
	os.Exit(2)
}
