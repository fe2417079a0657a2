package peercred

import (
	"testing"

	"github.com/nixpig/syspal/pkg/oserr"
	"github.com/stretchr/testify/assert"
)

func TestCredWithPID(t *testing.T) {
	base := Cred{UID: 1000, GID: 1000}

	t.Run("test failing pid lookup keeps base credential", func(t *testing.T) {
		calls := 0

		cred := credWithPID(base, func() (int32, error) {
			calls++
			return 0, oserr.NewUnsupported("getsockopt LOCAL_PEERPID")
		})

		assert.Equal(t, 1, calls)
		assert.Equal(t, Cred{UID: 1000, GID: 1000}, cred)
		assert.False(t, cred.HasPID)
	})

	t.Run("test successful pid lookup augments credential", func(t *testing.T) {
		cred := credWithPID(base, func() (int32, error) {
			return 4242, nil
		})

		assert.Equal(t, uint32(1000), cred.UID)
		assert.Equal(t, uint32(1000), cred.GID)
		assert.True(t, cred.HasPID)
		assert.Equal(t, int32(4242), cred.PID)
	})
}
