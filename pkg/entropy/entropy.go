// Package entropy supplies the random key material used to seed hash
// randomization and similar unpredictability-dependent features.
package entropy

// Keys returns two freshly drawn 64-bit keys.
//
// On platforms without a native entropy source the stub backend returns a
// fixed, clearly non-random placeholder pair; features relying on key
// unpredictability for security are unsupported there rather than
// silently weakened.
func Keys() (uint64, uint64, error) {
	return keys()
}
