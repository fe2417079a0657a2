//go:build linux

package cli

import (
	"fmt"

	"github.com/syndtr/gocapability/capability"
)

// effectiveCaps returns the effective capability set of the current
// process.
func effectiveCaps() (string, error) {
	c, err := capability.NewPid2(0)
	if err != nil {
		return "", fmt.Errorf("initialise capabilities: %w", err)
	}

	if err := c.Load(); err != nil {
		return "", fmt.Errorf("load capabilities: %w", err)
	}

	return c.StringCap(capability.EFFECTIVE), nil
}
