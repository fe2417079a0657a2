//go:build !unix

package entropy

// keys returns a fixed placeholder pair on targets with no native entropy
// source. The values are deliberately recognizable as non-random.
func keys() (uint64, uint64, error) {
	return 1, 2, nil
}
