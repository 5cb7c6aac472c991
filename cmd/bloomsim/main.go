// Command bloomsim exercises a bloom filter against randomly generated test
// sets and reports empirical true and false positive rates next to the
// analytic estimates.
package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/simplebf/simplebf"
	"github.com/simplebf/simplebf/internal/sim"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		log2NumBits   uint
		numEntries    uint64
		numChallenges uint64
		seed          uint64
	)

	cmd := &cobra.Command{
		Use:   "bloomsim",
		Short: "Measure bloom filter false positive rates on random test sets",
		Long: `bloomsim builds a bloom filter of 2^log2-bits bits, fills it with a random
entry set, and queries it with a disjoint challenge set. The report compares
the measured true and false positive rates with the analytic estimates.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = rand.Uint64()
			}
			return run(log2NumBits, numEntries, numChallenges, seed)
		},
	}

	cmd.Flags().UintVar(&log2NumBits, "log2-bits", 13, "base-2 logarithm of the filter bit length")
	cmd.Flags().Uint64Var(&numEntries, "entries", 1024, "number of entries to insert")
	cmd.Flags().Uint64Var(&numChallenges, "challenges", 1024, "number of disjoint entries to challenge with")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (default: randomized)")

	return cmd
}

func run(log2NumBits uint, numEntries, numChallenges, seed uint64) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	f := simplebf.NewWithSize[string](log2NumBits)
	if f.ParamErrors()&simplebf.ParamErrorNumBits != 0 {
		// The filter was clamped away from the requested size; unlike a
		// hash-count shortfall this makes the whole run meaningless.
		logger.Error("requested filter size is out of range",
			zap.Uint("log2_bits", log2NumBits),
			zap.Uint("max_log2_bits", simplebf.MaxLog2NumBits))
		return errors.New("bloomsim: filter size out of range")
	}

	rng := sim.NewSource(seed)
	entries := sim.GenerateSet(rng, numEntries)

	fmt.Println("[Test setting]")
	fmt.Printf("The number of entries         : %d\n", numEntries)
	fmt.Printf("The total data size           : %d [bits]\n", sim.TotalBits(entries))
	fmt.Printf("The random seed               : %d\n", seed)
	fmt.Println()

	if !f.SetOptimalNumHashes(numEntries) {
		logger.Warn("optimal hash count fell below the minimum, using one hash function",
			zap.Uint64("num_bits", f.NumBits()),
			zap.Uint64("entries", numEntries))
	}

	fmt.Println("[Bloom filter setting]")
	fmt.Printf("The filter size               : %d [bits]\n", f.NumBits())
	fmt.Printf("The number of hash functions  : %d\n", f.NumHashes())
	fmt.Println()

	sim.Fill(f, entries)
	challenges := sim.GenerateDisjointSet(rng, numChallenges, entries)
	result := sim.Measure(f, entries, challenges)

	fmt.Println("[Bloom filter test]")
	fmt.Printf("True Positive Rate            : %g\n", result.TruePositiveRate())
	fmt.Printf("Estimated True Positive Rate  : %g\n", 1.0)
	fmt.Printf("False Positive Rate           : %g\n", result.FalsePositiveRate())
	fmt.Printf("Estimated False Positive Rate : %g\n",
		simplebf.EstimateFalsePositiveRate(f.NumBits(), f.NumHashes(), numEntries))

	return nil
}
