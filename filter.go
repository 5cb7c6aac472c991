package simplebf

import "github.com/bits-and-blooms/bitset"

// Entry is the closed set of element types a Filter can hold: integers of
// the common widths and signedness, floating-point values, and strings.
// Anything else is rejected at compile time.
type Entry interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 | string
}

// ParamError is a bit set recording invalid configuration requests. Flags
// are sticky: they persist until cleared with [Filter.ClearParamError] and
// never block Insert or Contains.
type ParamError uint8

const (
	// ParamErrorNumBits is set when a requested bit length had to be clamped.
	ParamErrorNumBits ParamError = 1 << iota
	// ParamErrorNumHashes is set when a requested hash count was below the minimum.
	ParamErrorNumHashes
)

const (
	// DefaultLog2NumBits is the default bit-length exponent (256 bits).
	DefaultLog2NumBits uint = 8
	// DefaultNumHashes is the default number of hash functions.
	DefaultNumHashes = 5
	// MaxLog2NumBits caps the bit array at 2^33 bits (1 GiB).
	MaxLog2NumBits uint = 33

	minLog2NumBits uint = 1
)

// Filter is a bloom filter over a power-of-two sized bit array, deriving
// all probe positions from two base hashes via the enhanced double hashing
// recurrence. False positives are possible, false negatives are not.
//
// A Filter is not safe for concurrent use. Contains only reads, so callers
// that need sharing can guard the filter with a sync.RWMutex.
type Filter[T Entry] struct {
	bits        *bitset.BitSet
	numBits     uint64 // always a power of two, numBits-1 is the probe mask
	numHashes   int
	size        uint64
	paramErrors ParamError
}

// New creates a filter with the default bit length (256 bits) and default
// hash count (5).
func New[T Entry]() *Filter[T] {
	return NewWithParams[T](DefaultLog2NumBits, DefaultNumHashes)
}

// NewWithSize creates a filter with 2^log2NumBits bits and the default hash
// count. Out-of-range sizes are clamped; check [Filter.HasParamError].
func NewWithSize[T Entry](log2NumBits uint) *Filter[T] {
	return NewWithParams[T](log2NumBits, DefaultNumHashes)
}

// NewWithParams creates a filter with 2^log2NumBits bits and numHashes hash
// functions. Invalid parameters are clamped to a usable configuration and
// recorded in the filter's ParamError flags; the filter is always usable.
func NewWithParams[T Entry](log2NumBits uint, numHashes int) *Filter[T] {
	f := &Filter[T]{}
	f.SetLog2NumBits(log2NumBits)
	f.SetNumHashes(numHashes)
	return f
}

// SetLog2NumBits reallocates the bit array to 2^log2NumBits zeroed bits and
// reports whether the requested size was honored.
//
// Requests above [MaxLog2NumBits] are clamped to 2^33 bits and requests
// below 1 are clamped to 2 bits; both set [ParamErrorNumBits] and return
// false, leaving the filter usable at the clamped size.
func (f *Filter[T]) SetLog2NumBits(log2NumBits uint) bool {
	ok := true
	switch {
	case log2NumBits > MaxLog2NumBits:
		log2NumBits = MaxLog2NumBits
		ok = false
	case log2NumBits < minLog2NumBits:
		log2NumBits = minLog2NumBits
		ok = false
	}

	f.numBits = 1 << log2NumBits
	f.bits = bitset.New(uint(f.numBits))

	if !ok {
		f.paramErrors |= ParamErrorNumBits
		return false
	}
	f.paramErrors &^= ParamErrorNumBits
	return true
}

// SetNumHashes sets the number of probe positions generated per operation
// and reports whether the requested count was honored. Counts below 1 are
// clamped to 1 and set [ParamErrorNumHashes].
func (f *Filter[T]) SetNumHashes(n int) bool {
	if n < 1 {
		f.numHashes = 1
		f.paramErrors |= ParamErrorNumHashes
		return false
	}

	f.numHashes = n
	f.paramErrors &^= ParamErrorNumHashes
	return true
}

// SetOptimalNumHashes sets the hash count that minimizes the false positive
// rate for the current bit length and an expected maximum of maxEntries
// insertions: trunc(ln(2) * numBits / maxEntries).
//
// A computed count below 1 degrades to a single hash function and returns
// false, but unlike [Filter.SetNumHashes] it does not leave a sticky flag:
// [ParamErrorNumHashes] is cleared unconditionally afterwards, so only the
// return value reports the shortfall.
func (f *Filter[T]) SetOptimalNumHashes(maxEntries uint64) bool {
	ok := f.SetNumHashes(OptimalNumHashes(f.numBits, maxEntries))
	f.paramErrors &^= ParamErrorNumHashes
	return ok
}

// Insert adds an entry to the filter. It always succeeds and increments
// Size, even for entries already present.
func (f *Filter[T]) Insert(entry T) {
	a, b := f.baseHashes(entry)
	mask := f.numBits - 1

	f.bits.Set(uint(a))
	for i := uint64(1); i < uint64(f.numHashes); i++ {
		a = (a + b) & mask
		b = (b + i) & mask
		f.bits.Set(uint(a))
	}

	f.size++
}

// Contains reports whether the entry might be in the filter. A false result
// is definitive; a true result may be a false positive.
func (f *Filter[T]) Contains(entry T) bool {
	a, b := f.baseHashes(entry)
	mask := f.numBits - 1

	if !f.bits.Test(uint(a)) {
		return false
	}
	for i := uint64(1); i < uint64(f.numHashes); i++ {
		a = (a + b) & mask
		b = (b + i) & mask
		if !f.bits.Test(uint(a)) {
			return false
		}
	}

	return true
}

// Hash returns the probe positions the filter examines for an entry, in
// probe order. The sequence is deterministic for a given configuration.
func (f *Filter[T]) Hash(entry T) []uint64 {
	a, b := f.baseHashes(entry)
	mask := f.numBits - 1

	hashes := make([]uint64, f.numHashes)
	hashes[0] = a
	for i := uint64(1); i < uint64(f.numHashes); i++ {
		a = (a + b) & mask
		b = (b + i) & mask
		hashes[i] = a
	}
	return hashes
}

// NumBits returns the length of the bit array. It is always a power of two.
func (f *Filter[T]) NumBits() uint64 {
	return f.numBits
}

// NumHashes returns the number of probe positions generated per operation.
func (f *Filter[T]) NumHashes() int {
	return f.numHashes
}

// Size returns the number of Insert calls. Duplicate insertions are counted
// separately.
func (f *Filter[T]) Size() uint64 {
	return f.size
}

// ParamErrors returns the sticky configuration error flags.
func (f *Filter[T]) ParamErrors() ParamError {
	return f.paramErrors
}

// HasParamError reports whether any configuration error flag is set.
func (f *Filter[T]) HasParamError() bool {
	return f.paramErrors != 0
}

// ClearParamError clears the given flags, or every flag when called with no
// arguments.
func (f *Filter[T]) ClearParamError(flags ...ParamError) {
	if len(flags) == 0 {
		f.paramErrors = 0
		return
	}
	for _, flag := range flags {
		f.paramErrors &^= flag
	}
}

// EstimatedFalsePositiveRate estimates the filter's current false positive
// rate from the number of entries inserted so far.
func (f *Filter[T]) EstimatedFalsePositiveRate() float64 {
	return EstimateFalsePositiveRate(f.numBits, f.numHashes, f.size)
}
