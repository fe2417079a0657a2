//go:build linux || darwin || freebsd

package peercred

import (
	"testing"

	"github.com/nixpig/syspal/pkg/oserr"
	"github.com/stretchr/testify/assert"
)

func TestCheckOptLen(t *testing.T) {
	scenarios := map[string]struct {
		got  uint32
		want uint32
		ok   bool
	}{
		"test exact length passes": {
			got:  12,
			want: 12,
			ok:   true,
		},
		"test truncated result fails": {
			got:  8,
			want: 12,
			ok:   false,
		},
		"test oversized result fails": {
			got:  16,
			want: 12,
			ok:   false,
		},
		"test zero length fails": {
			got:  0,
			want: 12,
			ok:   false,
		},
	}

	for scenario, data := range scenarios {
		t.Run(scenario, func(t *testing.T) {
			err := checkOptLen("getsockopt", data.got, data.want)

			if data.ok {
				assert.NoError(t, err)
				return
			}

			var oe *oserr.Error
			assert.ErrorAs(t, err, &oe)
			assert.Equal(t, oserr.InvalidInput, oe.Kind())
		})
	}
}
