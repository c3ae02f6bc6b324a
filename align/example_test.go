package align_test

import (
	"fmt"

	"github.com/bebop/pairhmm/align"
)

// ExamplePairs aligns two short, identical sequences and prints how
// many aligned pairs the posterior threshold accepts.
func ExamplePairs() {
	pairs := align.Pairs("ACGT", "ACGT")
	fmt.Println(len(pairs))
}

// ExamplePairsBanded shows the banded entry point used once sequences
// are too long for the quadratic full aligner; band size 100 keeps
// memory bounded to band^2 regardless of sequence length.
func ExamplePairsBanded() {
	pairs, err := align.PairsBanded("ACGTACGTACGT", "ACGTACGTACGT", 100)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(pairs) > 0)
}
