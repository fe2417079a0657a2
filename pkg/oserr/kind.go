// Package oserr normalizes raw operating system error codes into a
// portable error taxonomy shared by every platform backend, and provides
// the converters through which all sentinel-encoded syscall results pass.
// Since syspal talks to the kernel directly, `unix` functions are used
// preferentially over their `syscall` equivalents for consistency.
package oserr

import "fmt"

// Kind classifies a raw platform error code in a platform-independent
// way. The set is closed: codes with no portable classification decode to
// Other.
type Kind int

const (
	Other Kind = iota
	PermissionDenied
	AddrInUse
	AddrNotAvailable
	WouldBlock
	ConnectionAborted
	ConnectionRefused
	ConnectionReset
	AlreadyExists
	Interrupted
	InvalidInput
	NotFound
	NotConnected
	BrokenPipe
	TimedOut
	Unsupported
	OutOfMemory
)

var kindNames = map[Kind]string{
	Other:             "other error",
	PermissionDenied:  "permission denied",
	AddrInUse:         "address in use",
	AddrNotAvailable:  "address not available",
	WouldBlock:        "operation would block",
	ConnectionAborted: "connection aborted",
	ConnectionRefused: "connection refused",
	ConnectionReset:   "connection reset",
	AlreadyExists:     "entity already exists",
	Interrupted:       "operation interrupted",
	InvalidInput:      "invalid input parameter",
	NotFound:          "entity not found",
	NotConnected:      "not connected",
	BrokenPipe:        "broken pipe",
	TimedOut:          "timed out",
	Unsupported:       "unsupported",
	OutOfMemory:       "out of memory",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("kind(%d)", int(k))
}
