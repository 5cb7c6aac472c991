// Package simplebf provides a generic bloom filter built on enhanced double
// hashing.
//
// A bloom filter is a space-efficient probabilistic data structure that tests
// whether an element is a member of a set. False positive matches are
// possible, but false negatives are not – if the filter says an element is
// not present, it definitely is not. If it says an element might be present,
// it could be a false positive.
//
// # Architecture
//
// The filter keeps a power-of-two sized bit array, so every hash value is
// reduced with a single bitmask instead of a modulo. Two base hashes are
// computed per entry:
//
// The first hash is the xxh3 hash of the entry's native representation.
// The second hash is the djb2 hash of the entry's canonical string form,
// forced odd so it is coprime with the power-of-two bit length. From these
// two values the enhanced double hashing recurrence
//
//	a = (a + b) mod m; b = (b + i) mod m
//
// derives all k probe positions, equivalent to h1 + i*h2 + (i³−i)/6 mod m.
// This gives k well-distributed positions for the price of two hash
// computations, and for string entries the second hash skips the formatting
// round trip entirely.
//
// # Entry types
//
// [Filter] is generic over [Entry], a closed set of element types: integers
// of the common widths and signedness, floats, and strings. The constraint
// rejects everything else at compile time.
//
// # Choosing Parameters
//
// [New] creates a 256-bit filter with 5 hash functions. For real workloads
// size the filter explicitly and let [Filter.SetOptimalNumHashes] pick the
// hash count for your expected entry count:
//
//	f := simplebf.NewWithSize[string](20) // 2^20 bits
//	f.SetOptimalNumHashes(100_000)
//
// Use [EstimateFalsePositiveRate] or [Filter.EstimatedFalsePositiveRate] to
// check what a configuration buys you.
//
// # Parameter errors
//
// Configuration never fails hard. Requests outside the supported range are
// clamped to a usable value, reported through the setter's boolean return,
// and recorded in a sticky [ParamError] flag set queryable with
// [Filter.ParamErrors] and cleared with [Filter.ClearParamError]. A clamped
// filter keeps working; only its false positive rate suffers.
//
// # Thread Safety
//
// [Filter] is NOT thread-safe. [Filter.Contains] only reads, so concurrent
// callers can guard a shared filter with a [sync.RWMutex].
//
// # References
//
//   - Enhanced double hashing: https://www.khoury.northeastern.edu/~pete/pub/bloom-filters-verification.pdf
//   - djb2: http://www.cse.yorku.ca/~oz/hash.html
package simplebf
