package noise

import "github.com/cespare/xxhash/v2"

// xxhashSeed folds an arbitrary byte key into a 64-bit value. Used for
// split_pos where the algorithm does not mandate a specific hash (unlike
// split_string, which is pinned to MD5 for seed compatibility).
func xxhashSeed(key []byte) uint64 {
	return xxhash.Sum64(key)
}
