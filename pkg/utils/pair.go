package utils

import "github.com/google/uuid"

// PairKey returns a canonical key for an unordered pair of user ids.
// Both orderings of the same two ids map to the same key.
func PairKey(a, b uuid.UUID) string {
	if a.String() < b.String() {
		return a.String() + ":" + b.String()
	}
	return b.String() + ":" + a.String()
}
