//go:build unix

package boot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// stubAbort makes violations observable instead of terminating the test
// process, and restores pristine lifecycle state afterwards. Tests here
// share the process-wide bootstrap value, so none of them run in
// parallel.
func stubAbort(t *testing.T) {
	t.Helper()

	abortProcess = func() {}

	t.Cleanup(func() {
		abortProcess = platformAbort
		if bootstrap.guard != nil {
			_ = unix.Munmap(bootstrap.guard)
		}
		bootstrap = bootstrapState{}
		state.Store(int32(StateUninitialized))
	})
}

func TestInitThenCleanup(t *testing.T) {
	stubAbort(t)

	require.Equal(t, StateUninitialized, Current())
	assert.Nil(t, Args())

	err := Init([]string{"syspal", "--demo"})
	require.NoError(t, err)
	assert.Equal(t, StateReady, Current())
	assert.NotNil(t, bootstrap.guard)
	assert.Len(t, bootstrap.guard, guardRegionSize)

	args := Args()
	assert.Equal(t, []string{"syspal", "--demo"}, args)

	// The snapshot is process-owned; callers get copies.
	args[0] = "mutated"
	assert.Equal(t, "syspal", Args()[0])

	err = Cleanup()
	require.NoError(t, err)
	assert.Equal(t, StateTerminated, Current())
	assert.Nil(t, bootstrap.guard)
	assert.Nil(t, Args())
}

func TestDoubleInitIsViolation(t *testing.T) {
	stubAbort(t)

	require.NoError(t, Init([]string{"syspal"}))

	assert.Panics(t, func() {
		_ = Init([]string{"syspal"})
	})
	assert.Equal(t, StateAborted, Current())
}

func TestCleanupBeforeInitIsViolation(t *testing.T) {
	stubAbort(t)

	assert.Panics(t, func() {
		_ = Cleanup()
	})
	assert.Equal(t, StateAborted, Current())
}

func TestCleanupTwiceIsViolation(t *testing.T) {
	stubAbort(t)

	require.NoError(t, Init([]string{"syspal"}))
	require.NoError(t, Cleanup())

	assert.Panics(t, func() {
		_ = Cleanup()
	})
	assert.Equal(t, StateAborted, Current())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "ready", StateReady.String())
	assert.Equal(t, "aborted", StateAborted.String())
	assert.Equal(t, "state(42)", State(42).String())
}
