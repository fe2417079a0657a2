//go:build linux || darwin || freebsd

package peercred

import (
	"github.com/nixpig/syspal/pkg/oserr"
	"golang.org/x/sys/unix"
)

// checkOptLen verifies that the kernel wrote exactly the expected number
// of bytes for a socket option. A truncated or oversized result is a
// failure, never partial success, regardless of the call's return code.
func checkOptLen(op string, got, want uint32) error {
	if got != want {
		return oserr.New(op, int(unix.EINVAL))
	}

	return nil
}
