//go:build linux

package peercred

import (
	"unsafe"

	"github.com/nixpig/syspal/pkg/oserr"
	"golang.org/x/sys/unix"
)

// peerCred reads the combined SO_PEERCRED structure. The raw getsockopt
// form is used instead of the x/sys wrapper so the returned option length
// can be verified: a truncated or oversized ucred is a failure even when
// the call itself reports success.
func peerCred(fd int) (Cred, error) {
	var (
		ucred unix.Ucred
		size  = uint32(unix.SizeofUcred)
	)

	r1, _, errno := unix.Syscall6(
		unix.SYS_GETSOCKOPT,
		uintptr(fd),
		uintptr(unix.SOL_SOCKET),
		uintptr(unix.SO_PEERCRED),
		uintptr(unsafe.Pointer(&ucred)),
		uintptr(unsafe.Pointer(&size)),
		0,
	)
	if _, err := oserr.Cvt("getsockopt SO_PEERCRED", int(r1), errno); err != nil {
		return Cred{}, err
	}

	if err := checkOptLen("getsockopt SO_PEERCRED", size, unix.SizeofUcred); err != nil {
		return Cred{}, err
	}

	return Cred{
		UID:    ucred.Uid,
		GID:    ucred.Gid,
		PID:    ucred.Pid,
		HasPID: true,
	}, nil
}
