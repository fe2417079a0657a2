//go:build !unix

package oserr

import "fmt"

// DecodeKind maps a raw platform error code to its portable Kind on
// targets without a native errno surface. The table uses the fixed
// numeric codes reported by the stub backends; anything else decodes to
// Other.
func DecodeKind(code int) Kind {
	// 11 is the historical would-block code; it aliases the interrupted
	// resource code on this family and both mean WouldBlock.
	switch code {
	case 1, 13:
		return PermissionDenied
	case 2:
		return NotFound
	case 4:
		return Interrupted
	case 11:
		return WouldBlock
	case 12:
		return OutOfMemory
	case 17:
		return AlreadyExists
	case 22:
		return InvalidInput
	case 32:
		return BrokenPipe
	case 38:
		return Unsupported
	case 98:
		return AddrInUse
	case 99:
		return AddrNotAvailable
	case 103:
		return ConnectionAborted
	case 104:
		return ConnectionReset
	case 107:
		return NotConnected
	case 110:
		return TimedOut
	case 111:
		return ConnectionRefused
	}

	return Other
}

func errnoMessage(code int) string {
	return fmt.Sprintf("os error %d", code)
}

func errnoErr(code int) error {
	if code == 0 {
		return nil
	}

	return fmt.Errorf("os error %d", code)
}
