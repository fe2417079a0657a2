//go:build !unix

package boot

import (
	"os"

	"github.com/nixpig/syspal/pkg/oserr"
)

// Stub backend for platforms without native bootstrap support. Every
// operation reports Unsupported immediately, with the same signatures as
// the native backends and without touching any process state.

// Init reports that runtime bootstrap is not supported on this platform.
func Init([]string) error {
	return oserr.NewUnsupported("runtime bootstrap init")
}

// Cleanup reports that runtime teardown is not supported on this
// platform.
func Cleanup() error {
	return oserr.NewUnsupported("runtime bootstrap cleanup")
}

func platformAbort() {
	os.Exit(2)
}
