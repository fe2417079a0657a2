// Package peercred resolves the identity of the process at the remote end
// of a connected unix domain socket.
//
// The mechanism differs per platform family and is selected at build time
// behind a single contract: Linux reads the combined SO_PEERCRED
// structure, the BSDs expose only the uid/gid pair, and Darwin adds a
// best-effort pid lookup on top of the base credential. A missing pid is
// a documented capability gap of the platform mechanism, not a failure.
package peercred

import (
	"fmt"
	"net"
)

// Cred identifies the peer process of a connected unix domain socket at
// the moment it was resolved. It is a snapshot; the peer may exit or
// change credentials afterwards.
type Cred struct {
	// UID is the effective user ID of the peer process.
	UID uint32

	// GID is the effective group ID of the peer process.
	GID uint32

	// PID is the process ID of the peer. It is only meaningful when
	// HasPID is true; not every platform mechanism can recover it.
	PID int32

	// HasPID reports whether the backend was able to retrieve the pid.
	HasPID bool
}

// Get resolves the credential of the peer connected to conn. The
// connection is borrowed for the duration of the call; it is never closed
// or consumed, and no retry is attempted internally.
func Get(conn *net.UnixConn) (Cred, error) {
	raw, err := conn.SyscallConn()
	if err != nil {
		return Cred{}, fmt.Errorf("peer credential: %w", err)
	}

	var (
		cred    Cred
		credErr error
	)
	if err := raw.Control(func(fd uintptr) {
		cred, credErr = peerCred(int(fd))
	}); err != nil {
		return Cred{}, fmt.Errorf("peer credential: %w", err)
	}
	if credErr != nil {
		return Cred{}, credErr
	}

	return cred, nil
}

// credWithPID augments a resolved base credential with a best-effort pid
// lookup. A failing lookup leaves the base credential untouched: pid
// retrieval never downgrades an already-successful resolution.
func credWithPID(cred Cred, lookup func() (int32, error)) Cred {
	pid, err := lookup()
	if err != nil {
		return cred
	}

	cred.PID = pid
	cred.HasPID = true

	return cred
}
