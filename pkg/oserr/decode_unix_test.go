//go:build unix

package oserr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestDecodeKind(t *testing.T) {
	scenarios := map[string]struct {
		code int
		kind Kind
	}{
		"test connection refused": {
			code: int(unix.ECONNREFUSED),
			kind: ConnectionRefused,
		},
		"test connection reset": {
			code: int(unix.ECONNRESET),
			kind: ConnectionReset,
		},
		"test permission denied from EPERM": {
			code: int(unix.EPERM),
			kind: PermissionDenied,
		},
		"test permission denied from EACCES": {
			code: int(unix.EACCES),
			kind: PermissionDenied,
		},
		"test broken pipe": {
			code: int(unix.EPIPE),
			kind: BrokenPipe,
		},
		"test not connected": {
			code: int(unix.ENOTCONN),
			kind: NotConnected,
		},
		"test connection aborted": {
			code: int(unix.ECONNABORTED),
			kind: ConnectionAborted,
		},
		"test address not available": {
			code: int(unix.EADDRNOTAVAIL),
			kind: AddrNotAvailable,
		},
		"test address in use": {
			code: int(unix.EADDRINUSE),
			kind: AddrInUse,
		},
		"test not found": {
			code: int(unix.ENOENT),
			kind: NotFound,
		},
		"test interrupted": {
			code: int(unix.EINTR),
			kind: Interrupted,
		},
		"test invalid input": {
			code: int(unix.EINVAL),
			kind: InvalidInput,
		},
		"test timed out": {
			code: int(unix.ETIMEDOUT),
			kind: TimedOut,
		},
		"test already exists": {
			code: int(unix.EEXIST),
			kind: AlreadyExists,
		},
		"test unsupported": {
			code: int(unix.ENOSYS),
			kind: Unsupported,
		},
		"test out of memory": {
			code: int(unix.ENOMEM),
			kind: OutOfMemory,
		},
		"test would block from EAGAIN": {
			code: int(unix.EAGAIN),
			kind: WouldBlock,
		},
		"test would block from EWOULDBLOCK": {
			code: int(unix.EWOULDBLOCK),
			kind: WouldBlock,
		},
		"test unmapped code": {
			code: int(unix.EXDEV),
			kind: Other,
		},
		"test zero code": {
			code: 0,
			kind: Other,
		},
		"test out of range code": {
			code: 1 << 20,
			kind: Other,
		},
	}

	for scenario, data := range scenarios {
		t.Run(scenario, func(t *testing.T) {
			assert.Equal(t, data.kind, DecodeKind(data.code))
		})
	}
}

func TestErrorRoundTrip(t *testing.T) {
	err := New("getsockopt", int(unix.EACCES))

	assert.Equal(t, PermissionDenied, err.Kind())
	assert.Equal(t, int(unix.EACCES), err.RawOsError())
	assert.True(t, errors.Is(err, unix.EACCES))
	assert.Contains(t, err.Error(), "getsockopt")
	assert.Contains(t, err.Error(), "permission denied")
}

func TestNewUnsupported(t *testing.T) {
	err := NewUnsupported("peer credential")

	assert.Equal(t, Unsupported, err.Kind())
	assert.Equal(t, 0, err.RawOsError())
	assert.Nil(t, errors.Unwrap(err))
	assert.Equal(
		t,
		"peer credential: operation not supported on this platform yet",
		err.Error(),
	)
}
