package oserr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	scenarios := map[string]struct {
		kind Kind
		name string
	}{
		"test named kind": {
			kind: ConnectionRefused,
			name: "connection refused",
		},
		"test zero value kind": {
			kind: Other,
			name: "other error",
		},
		"test out of range kind": {
			kind: Kind(99),
			name: "kind(99)",
		},
	}

	for scenario, data := range scenarios {
		t.Run(scenario, func(t *testing.T) {
			assert.Equal(t, data.name, data.kind.String())
		})
	}
}
