// Package sim generates random test sets and measures empirical true and
// false positive rates for a bloom filter.
package sim

import (
	"math/rand/v2"
	"strconv"

	"github.com/simplebf/simplebf"
)

// NewSource returns a deterministic random source for the given seed. Two
// sources built from the same seed generate identical sets.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// GenerateSet returns n distinct random decimal strings.
func GenerateSet(rng *rand.Rand, n uint64) map[string]struct{} {
	set := make(map[string]struct{}, n)
	for uint64(len(set)) < n {
		set[strconv.FormatUint(rng.Uint64(), 10)] = struct{}{}
	}
	return set
}

// GenerateDisjointSet returns n distinct random decimal strings, none of
// which appear in exclude.
func GenerateDisjointSet(rng *rand.Rand, n uint64, exclude map[string]struct{}) map[string]struct{} {
	set := make(map[string]struct{}, n)
	for uint64(len(set)) < n {
		entry := strconv.FormatUint(rng.Uint64(), 10)
		if _, ok := exclude[entry]; ok {
			continue
		}
		set[entry] = struct{}{}
	}
	return set
}

// TotalBits returns the summed data size of the set in bits, counting a
// terminating NUL byte per entry.
func TotalBits(set map[string]struct{}) uint64 {
	var total uint64
	for entry := range set {
		total += uint64(len(entry)+1) * 8
	}
	return total
}

// Fill inserts every entry of the set into the filter.
func Fill(f *simplebf.Filter[string], set map[string]struct{}) {
	for entry := range set {
		f.Insert(entry)
	}
}

// Result holds the outcome of one measurement run.
type Result struct {
	Inserted       uint64
	Challenged     uint64
	TruePositives  uint64
	FalsePositives uint64
}

// TruePositiveRate returns the fraction of inserted entries the filter
// reported present. Anything below 1 indicates a broken filter.
func (r Result) TruePositiveRate() float64 {
	if r.Inserted == 0 {
		return 0
	}
	return float64(r.TruePositives) / float64(r.Inserted)
}

// FalsePositiveRate returns the fraction of challenge entries the filter
// reported present.
func (r Result) FalsePositiveRate() float64 {
	if r.Challenged == 0 {
		return 0
	}
	return float64(r.FalsePositives) / float64(r.Challenged)
}

// Measure queries the filter for every inserted entry and every challenge
// entry. The challenge set must be disjoint from the inserted set, so every
// hit on it is a false positive.
func Measure(f *simplebf.Filter[string], inserted, challenges map[string]struct{}) Result {
	r := Result{
		Inserted:   uint64(len(inserted)),
		Challenged: uint64(len(challenges)),
	}

	for entry := range inserted {
		if f.Contains(entry) {
			r.TruePositives++
		}
	}
	for entry := range challenges {
		if f.Contains(entry) {
			r.FalsePositives++
		}
	}

	return r
}
