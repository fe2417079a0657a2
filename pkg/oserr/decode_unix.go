//go:build unix

package oserr

import "golang.org/x/sys/unix"

// DecodeKind maps a raw platform error code to its portable Kind. It is
// pure and total: every integer decodes to exactly one kind, and codes
// outside the table decode to Other. The table is compiled per target
// family; the errno constants below take their values from the target's
// own headers.
func DecodeKind(code int) Kind {
	errno := unix.Errno(code)

	// EAGAIN and EWOULDBLOCK are distinct conditions that share a numeric
	// value on some systems but not on others, so they cannot appear as
	// separate switch cases. Both mean WouldBlock.
	if errno == unix.EAGAIN || errno == unix.EWOULDBLOCK {
		return WouldBlock
	}

	switch errno {
	case unix.ECONNREFUSED:
		return ConnectionRefused
	case unix.ECONNRESET:
		return ConnectionReset
	case unix.EPERM, unix.EACCES:
		return PermissionDenied
	case unix.EPIPE:
		return BrokenPipe
	case unix.ENOTCONN:
		return NotConnected
	case unix.ECONNABORTED:
		return ConnectionAborted
	case unix.EADDRNOTAVAIL:
		return AddrNotAvailable
	case unix.EADDRINUSE:
		return AddrInUse
	case unix.ENOENT:
		return NotFound
	case unix.EINTR:
		return Interrupted
	case unix.EINVAL:
		return InvalidInput
	case unix.ETIMEDOUT:
		return TimedOut
	case unix.EEXIST:
		return AlreadyExists
	case unix.ENOSYS:
		return Unsupported
	case unix.ENOMEM:
		return OutOfMemory
	}

	return Other
}

func errnoMessage(code int) string {
	return unix.Errno(code).Error()
}

func errnoErr(code int) error {
	if code == 0 {
		return nil
	}

	return unix.Errno(code)
}
