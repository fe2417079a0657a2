//go:build linux

package entropy

import (
	"encoding/binary"

	"github.com/nixpig/syspal/pkg/oserr"
	"golang.org/x/sys/unix"
)

func keys() (uint64, uint64, error) {
	var buf [16]byte
	if err := fill(buf[:]); err != nil {
		return 0, 0, err
	}

	return binary.LittleEndian.Uint64(buf[:8]),
		binary.LittleEndian.Uint64(buf[8:]),
		nil
}

// fill draws from getrandom(2), retrying interrupted calls and short
// reads.
func fill(b []byte) error {
	for len(b) > 0 {
		n, err := oserr.CvtRetry("getrandom", func() (int, unix.Errno) {
			n, err := unix.Getrandom(b, 0)
			return n, oserr.ErrnoOf(err)
		})
		if err != nil {
			return err
		}

		b = b[n:]
	}

	return nil
}
