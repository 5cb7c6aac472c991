package simplebf_test

import (
	"fmt"

	"github.com/simplebf/simplebf"
)

// This example demonstrates basic membership testing.
func Example() {
	// 2^13 bits with the default 5 hash functions.
	f := simplebf.NewWithSize[string](13)

	f.Insert("apple")
	f.Insert("banana")
	f.Insert("cherry")

	fmt.Println("apple:", f.Contains("apple"))   // true (inserted)
	fmt.Println("banana:", f.Contains("banana")) // true (inserted)
	fmt.Println("grape:", f.Contains("grape"))   // false (not inserted)

	// Output:
	// apple: true
	// banana: true
	// grape: false
}

// This example shows a filter over a numeric entry type.
func Example_numericEntries() {
	f := simplebf.NewWithSize[int](13)

	f.Insert(42)
	f.Insert(1000)

	fmt.Println("42:", f.Contains(42))
	fmt.Println("7:", f.Contains(7))

	// Output:
	// 42: true
	// 7: false
}

// This example sizes the hash count for an expected entry load.
func Example_optimalHashes() {
	f := simplebf.NewWithSize[string](13)

	// Pick the hash count that minimizes the false positive rate for
	// 1024 expected entries.
	f.SetOptimalNumHashes(1024)

	fmt.Println("bits:", f.NumBits())
	fmt.Println("hashes:", f.NumHashes())

	// Output:
	// bits: 8192
	// hashes: 5
}

// This example shows how invalid configuration is clamped and reported.
func Example_parameterErrors() {
	f := simplebf.New[string]()

	// A hash count below 1 is clamped to 1 and flagged; the filter keeps
	// working.
	ok := f.SetNumHashes(0)
	fmt.Println("accepted:", ok)
	fmt.Println("hashes:", f.NumHashes())
	fmt.Println("flagged:", f.HasParamError())

	// A valid request clears the flag.
	f.SetNumHashes(4)
	fmt.Println("flagged after fix:", f.HasParamError())

	// Output:
	// accepted: false
	// hashes: 1
	// flagged: true
	// flagged after fix: false
}

func ExampleFilter_Hash() {
	f := simplebf.New[string]()

	// One probe position per configured hash function, in probe order.
	positions := f.Hash("key")
	fmt.Println("probes:", len(positions))

	// Output:
	// probes: 5
}

func ExampleOptimalNumHashes() {
	fmt.Println(simplebf.OptimalNumHashes(8192, 1024))

	// Output:
	// 5
}

func ExampleEstimateFalsePositiveRate() {
	// 8192 bits, 5 hash functions, 1024 entries.
	rate := simplebf.EstimateFalsePositiveRate(8192, 5, 1024)
	fmt.Printf("%.4f\n", rate)

	// Output:
	// 0.0217
}
