//go:build unix

package main

import (
	"testing"

	"github.com/nixpig/syspal/pkg/boot"
	"github.com/stretchr/testify/assert"
)

func TestRunCleansUpAfterCommandFailure(t *testing.T) {
	code := run([]string{"syspal", "errno", "not-a-number"})

	assert.Equal(t, 1, code)
	assert.Equal(t, boot.StateTerminated, boot.Current())
}
