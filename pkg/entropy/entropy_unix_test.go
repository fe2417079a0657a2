//go:build unix

package entropy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	k1, k2, err := Keys()
	require.NoError(t, err)

	assert.False(t, k1 == 0 && k2 == 0)

	k3, k4, err := Keys()
	require.NoError(t, err)

	// Two independent 128-bit draws colliding means the source is not
	// random at all.
	assert.False(t, k1 == k3 && k2 == k4)
}
