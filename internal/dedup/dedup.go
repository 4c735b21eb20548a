// Package dedup implements spec.md §4.13's adaptive duplicate detector,
// used by the collection builder just before sealing a set or map. The
// size thresholds (16, 1000) are normative — spec.md pins them, so they are
// not configurable.
package dedup

import "sort"

const (
	linearScanMax = 16
	hashSetMin    = 1000
)

// Equal reports whether two elements are equal; Hash returns a content
// hash satisfying a==b ⇒ Hash(a)==Hash(b). Both are supplied by the caller
// so this package stays agnostic to the Value type it's deduplicating.
type Equal func(a, b int) bool
type Hash func(i int) uint64

// HasDuplicate reports whether any two of the n elements indexed [0,n) are
// equal, picking the algorithm tier by n exactly as spec.md §4.13
// prescribes:
//
//	n <= 16:          O(n^2) linear scan with Equal
//	16 < n <= 1000:   sort by Hash, compare equal-hash neighbours with Equal
//	n > 1000:         hash set keyed by (Hash, Equal)
func HasDuplicate(n int, hash Hash, equal Equal) bool {
	switch {
	case n <= linearScanMax:
		return linearScan(n, equal)
	case n <= hashSetMin:
		return sortedScan(n, hash, equal)
	default:
		return hashSetScan(n, hash, equal)
	}
}

func linearScan(n int, equal Equal) bool {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if equal(i, j) {
				return true
			}
		}
	}
	return false
}

func sortedScan(n int, hash Hash, equal Equal) bool {
	idx := make([]int, n)
	hashes := make([]uint64, n)
	for i := 0; i < n; i++ {
		idx[i] = i
		hashes[i] = hash(i)
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return hashes[idx[a]] < hashes[idx[b]]
	})
	for i := 1; i < n; i++ {
		a, b := idx[i-1], idx[i]
		if hashes[a] != hashes[b] {
			continue
		}
		// Scan backwards across the whole equal-hash run, not just the
		// immediate neighbour, since a hash collision run can be longer
		// than two.
		for k := i - 1; k >= 0 && hashes[idx[k]] == hashes[b]; k-- {
			if equal(idx[k], b) {
				return true
			}
		}
	}
	return false
}

func hashSetScan(n int, hash Hash, equal Equal) bool {
	buckets := make(map[uint64][]int, n)
	for i := 0; i < n; i++ {
		h := hash(i)
		for _, j := range buckets[h] {
			if equal(i, j) {
				return true
			}
		}
		buckets[h] = append(buckets[h], i)
	}
	return false
}
