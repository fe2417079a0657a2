//go:build unix && !darwin

package boot

import (
	"os"

	"github.com/nixpig/syspal/pkg/oserr"
	"golang.org/x/sys/unix"
)

// sanitizeStdio probes the three standard descriptors with a zero-timeout
// poll, retried across interruption, and reopens any invalid one on the
// null device. Descriptors are handled in ascending order so each fresh
// open lands on the lowest, just-probed slot. A failed probe or reopen is
// fatal: continuing would let unrelated files opened later silently alias
// a standard stream.
func sanitizeStdio() {
	pfds := []unix.PollFd{{Fd: 0}, {Fd: 1}, {Fd: 2}}

	if _, err := oserr.CvtRetry("poll", func() (int, unix.Errno) {
		n, err := unix.Poll(pfds, 0)
		return n, oserr.ErrnoOf(err)
	}); err != nil {
		fatalf("probe standard descriptors: %v", err)
	}

	for i := range pfds {
		if pfds[i].Revents&unix.POLLNVAL == 0 {
			continue
		}

		if _, err := unix.Open(os.DevNull, unix.O_RDWR, 0); err != nil {
			fatalf("reopen standard descriptor %d: %v", pfds[i].Fd, err)
		}
	}
}
