package ladder

import "fmt"

// AreNeighbors reports whether a and b differ in exactly one byte position.
// Identical words are not neighbors. Both words must have the same length;
// otherwise AreNeighbors returns ErrLengthMismatch rather than false.
func AreNeighbors(a, b string) (bool, error) {
	if len(a) != len(b) {
		return false, fmt.Errorf("%w: %q (%d) vs %q (%d)", ErrLengthMismatch, a, len(a), b, len(b))
	}

	return neighbors(a, b), nil
}

// neighbors is AreNeighbors without the length check; len(a) == len(b) is assumed.
// It stops at the second mismatch.
func neighbors(a, b string) bool {
	mismatch := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			mismatch++
			if mismatch > 1 {
				return false
			}
		}
	}

	return mismatch == 1
}
