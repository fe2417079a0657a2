//go:build darwin

package peercred

import (
	"syscall"
	"unsafe"

	"github.com/nixpig/syspal/pkg/oserr"
	"golang.org/x/sys/unix"
)

// peerCred resolves the peer identity in two steps: LOCAL_PEERCRED for
// the base uid/gid, then LOCAL_PEERPID for the pid. The pid lookup is
// best-effort; once the base credential is known, a failing pid call
// never downgrades the result to an error.
func peerCred(fd int) (Cred, error) {
	xucred, err := unix.GetsockoptXucred(fd, unix.SOL_LOCAL, unix.LOCAL_PEERCRED)
	if err != nil {
		return Cred{}, oserr.Wrap("getsockopt LOCAL_PEERCRED", err)
	}

	if xucred.Version != unix.XUCRED_VERSION || xucred.Ngroups < 1 {
		return Cred{}, oserr.New("getsockopt LOCAL_PEERCRED", int(unix.EINVAL))
	}

	cred := Cred{
		UID: xucred.Uid,
		GID: xucred.Groups[0],
	}

	return credWithPID(cred, func() (int32, error) {
		return localPeerPID(fd)
	}), nil
}

// localPeerPID reads the LOCAL_PEERPID socket option with the raw
// getsockopt form so the written length can be verified against the size
// of a pid. This is the one place stdlib `syscall` is used instead of
// `unix`: x/sys does not expose SYS_GETSOCKOPT on darwin, and its
// GetsockoptInt wrapper hides the written length.
func localPeerPID(fd int) (int32, error) {
	var (
		pid  int32
		size = uint32(unsafe.Sizeof(pid))
	)

	r1, _, errno := syscall.Syscall6(
		syscall.SYS_GETSOCKOPT,
		uintptr(fd),
		uintptr(unix.SOL_LOCAL),
		uintptr(unix.LOCAL_PEERPID),
		uintptr(unsafe.Pointer(&pid)),
		uintptr(unsafe.Pointer(&size)),
		0,
	)
	if _, err := oserr.Cvt("getsockopt LOCAL_PEERPID", int(r1), unix.Errno(errno)); err != nil {
		return 0, err
	}

	if err := checkOptLen("getsockopt LOCAL_PEERPID", size, uint32(unsafe.Sizeof(pid))); err != nil {
		return 0, err
	}

	return pid, nil
}
