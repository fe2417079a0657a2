//go:build darwin

package boot

import (
	"os"

	"golang.org/x/sys/unix"
)

// sanitizeStdio reopens closed standard descriptors on the null device.
// Poll on Darwin does not report POLLNVAL for closed descriptors, so each
// one is probed with fcntl instead. A failed reopen is fatal: continuing
// would let unrelated files opened later silently alias a standard
// stream.
func sanitizeStdio() {
	for fd := 0; fd <= 2; fd++ {
		if _, err := unix.FcntlInt(uintptr(fd), unix.F_GETFD, 0); err != unix.EBADF {
			continue
		}

		if _, err := unix.Open(os.DevNull, unix.O_RDWR, 0); err != nil {
			fatalf("reopen standard descriptor %d: %v", fd, err)
		}
	}
}
