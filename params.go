package simplebf

import "math"

// ln2 is the natural logarithm of 2.
const ln2 = 0.6931471805599453

// OptimalNumHashes returns the hash count that minimizes the false positive
// rate for a filter of numBits bits holding at most maxEntries entries:
// trunc(ln(2) * numBits / maxEntries). The result is truncated toward zero,
// not rounded, and may be 0 when the filter is small relative to the
// expected entry count.
func OptimalNumHashes(numBits, maxEntries uint64) int {
	if maxEntries == 0 {
		return 0
	}
	return int(ln2 * float64(numBits) / float64(maxEntries))
}

// EstimateFalsePositiveRate estimates the false positive rate of a filter
// of numBits bits with numHashes hash functions after numEntries
// insertions: (1 - e^(-kn/m))^k. The estimate assumes independent bit-set
// events, so it is approximate.
func EstimateFalsePositiveRate(numBits uint64, numHashes int, numEntries uint64) float64 {
	if numBits == 0 || numEntries == 0 {
		return 0
	}

	m := float64(numBits)
	n := float64(numEntries)
	k := float64(numHashes)
	return math.Pow(1-math.Exp(-k*n/m), k)
}
