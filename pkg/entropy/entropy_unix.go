//go:build unix && !linux

package entropy

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

func keys() (uint64, uint64, error) {
	f, err := os.Open("/dev/urandom")
	if err != nil {
		return 0, 0, fmt.Errorf("open entropy source: %w", err)
	}
	defer f.Close()

	var buf [16]byte
	if _, err := io.ReadFull(f, buf[:]); err != nil {
		return 0, 0, fmt.Errorf("read entropy source: %w", err)
	}

	return binary.LittleEndian.Uint64(buf[:8]),
		binary.LittleEndian.Uint64(buf[8:]),
		nil
}
