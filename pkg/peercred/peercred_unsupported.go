//go:build !linux && !darwin && !freebsd

package peercred

import "github.com/nixpig/syspal/pkg/oserr"

// peerCred on platforms without a native peer credential mechanism. It
// satisfies the same contract as the native backends and performs no
// platform call.
func peerCred(int) (Cred, error) {
	return Cred{}, oserr.NewUnsupported("peer credential")
}
