//go:build !linux

package cli

// effectiveCaps is empty on platforms without a capability interface.
func effectiveCaps() (string, error) {
	return "", nil
}
