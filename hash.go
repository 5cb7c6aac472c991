package simplebf

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/zeebo/xxh3"
)

// djb2Seed is the initial state of the djb2 recurrence.
const djb2Seed uint64 = 5381

// Djb2 returns Daniel J. Bernstein's string hash of s: starting from 5381,
// hash = hash*33 + c for each byte c.
//
// Reference: http://www.cse.yorku.ca/~oz/hash.html
func Djb2(s string) uint64 {
	h := djb2Seed
	for i := 0; i < len(s); i++ {
		h = ((h << 5) + h) + uint64(s[i])
	}
	return h
}

// FirstHash returns the first base hash of the entry, reduced to
// [0, NumBits). It is the xxh3 hash of the entry's native representation.
func (f *Filter[T]) FirstHash(entry T) uint64 {
	return genericHash(entry) & (f.numBits - 1)
}

// SecondHash returns the second base hash of the entry, reduced to
// [0, NumBits). It is the djb2 hash of the entry's canonical string form,
// made odd so the probe step is coprime with the power-of-two bit length.
// String entries are hashed directly without a formatting round trip.
func (f *Filter[T]) SecondHash(entry T) uint64 {
	return ((Djb2(canonicalString(entry)) << 1) | 1) & (f.numBits - 1)
}

func (f *Filter[T]) baseHashes(entry T) (uint64, uint64) {
	return f.FirstHash(entry), f.SecondHash(entry)
}

// genericHash hashes an entry's native representation with xxh3. Strings
// are hashed directly; numeric kinds are widened to 64 bits and hashed as
// their little-endian byte pattern, so equal values hash equally regardless
// of their declared width.
func genericHash[T Entry](entry T) uint64 {
	switch v := any(entry).(type) {
	case string:
		return xxh3.HashString(v)
	case int:
		return hashUint64(uint64(v))
	case int8:
		return hashUint64(uint64(v))
	case int16:
		return hashUint64(uint64(v))
	case int32:
		return hashUint64(uint64(v))
	case int64:
		return hashUint64(uint64(v))
	case uint:
		return hashUint64(uint64(v))
	case uint8:
		return hashUint64(uint64(v))
	case uint16:
		return hashUint64(uint64(v))
	case uint32:
		return hashUint64(uint64(v))
	case uint64:
		return hashUint64(v)
	case float32:
		return hashUint64(math.Float64bits(float64(v)))
	case float64:
		return hashUint64(math.Float64bits(v))
	}
	panic("simplebf: entry type outside the supported set")
}

func hashUint64(v uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return xxh3.Hash(buf[:])
}

// canonicalString formats an entry for the second hash. Equal values always
// produce equal strings: integers in base 10, floats in the shortest form
// that round-trips exactly. Strings are returned as-is.
func canonicalString[T Entry](entry T) string {
	switch v := any(entry).(type) {
	case string:
		return v
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	panic("simplebf: entry type outside the supported set")
}
