//go:build unix

package oserr

import (
	"errors"

	"golang.org/x/sys/unix"
)

// signed covers the integer widths returned by raw syscalls. A single
// generic constraint replaces per-width duplication of the sentinel
// check.
type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Cvt interprets ret as a sentinel-encoded syscall return value: -1 means
// the call failed and errno carries the reason, any other value is
// success and is returned unchanged. Every raw call site goes through
// here rather than checking the sentinel ad hoc.
func Cvt[T signed](op string, ret T, errno unix.Errno) (T, error) {
	if ret == -1 {
		return ret, New(op, int(errno))
	}

	return ret, nil
}

// CvtRetry invokes f until it yields success or an error other than
// Interrupted. An interrupted syscall is not a failure, so the retry is
// unbounded; any non-interrupting error returns immediately.
func CvtRetry[T signed](op string, f func() (T, unix.Errno)) (T, error) {
	for {
		ret, errno := f()

		v, err := Cvt(op, ret, errno)
		if err == nil {
			return v, nil
		}

		if oe, ok := err.(*Error); ok && oe.Kind() == Interrupted {
			continue
		}

		return v, err
	}
}

// CvtNonzero interprets code as a direct error-code carrier: zero is
// success and any other value is itself the raw platform error code. For
// calls that return the code in-band instead of setting errno.
func CvtNonzero(op string, code int) error {
	if code == 0 {
		return nil
	}

	return New(op, code)
}

// ErrnoOf adapts the error returned by an x/sys wrapper to the sentinel
// convention expected by Cvt: the unix.Errno inside err, or 0 when err is
// nil.
func ErrnoOf(err error) unix.Errno {
	if err == nil {
		return 0
	}

	var errno unix.Errno
	if errors.As(err, &errno) {
		return errno
	}

	return 0
}

// Wrap converts an error returned by an x/sys wrapper into an *Error,
// preserving the raw code. It returns nil when err is nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	return New(op, int(ErrnoOf(err)))
}
