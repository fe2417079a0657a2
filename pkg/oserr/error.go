package oserr

import "fmt"

// Error pairs a raw platform error code with its portable classification.
// The raw code stays recoverable for diagnostics; the kind is what
// portable callers should branch on.
type Error struct {
	op   string
	code int
	kind Kind
}

// New returns the Error for the raw platform error code reported by op.
func New(op string, code int) *Error {
	return &Error{op: op, code: code, kind: DecodeKind(code)}
}

// NewUnsupported returns the Error reported by stub backends for
// operations the target platform has no support for. No raw code is
// attached since no platform call was made.
func NewUnsupported(op string) *Error {
	return &Error{op: op, kind: Unsupported}
}

// Kind returns the portable classification of the error.
func (e *Error) Kind() Kind { return e.kind }

// RawOsError returns the raw platform error code, or 0 when the error
// carries none.
func (e *Error) RawOsError() int { return e.code }

func (e *Error) Error() string {
	if e.code == 0 && e.kind == Unsupported {
		return e.op + ": operation not supported on this platform yet"
	}

	return fmt.Sprintf("%s: %s (os error %d)", e.op, errnoMessage(e.code), e.code)
}

// Unwrap exposes the underlying platform error value so callers can match
// against raw errno constants with errors.Is.
func (e *Error) Unwrap() error { return errnoErr(e.code) }
