//go:build freebsd

package peercred

import (
	"github.com/nixpig/syspal/pkg/oserr"
	"golang.org/x/sys/unix"
)

// peerCred reads the LOCAL_PEERCRED option. FreeBSD exposes only the
// uid/gid pair through this mechanism; the missing pid is a capability
// gap of the platform, not an error.
func peerCred(fd int) (Cred, error) {
	xucred, err := unix.GetsockoptXucred(fd, unix.SOL_LOCAL, unix.LOCAL_PEERCRED)
	if err != nil {
		return Cred{}, oserr.Wrap("getsockopt LOCAL_PEERCRED", err)
	}

	if xucred.Version != unix.XUCRED_VERSION || xucred.Ngroups < 1 {
		return Cred{}, oserr.New("getsockopt LOCAL_PEERCRED", int(unix.EINVAL))
	}

	return Cred{
		UID: xucred.Uid,
		GID: xucred.Groups[0],
	}, nil
}
