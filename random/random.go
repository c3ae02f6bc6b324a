/*
Package random generates random nucleotide sequences, used to exercise
the aligner over inputs too large to hand-write as test fixtures.
*/
package random

import "math/rand"

var dnaAlphabet = []rune("ACGT")

// DNASequence returns a random DNA sequence of the given length, using
// seed to make the sequence reproducible across test runs.
func DNASequence(length int, seed int64) string {
	r := rand.New(rand.NewSource(seed))
	sequence := make([]rune, length)
	for i := range sequence {
		sequence[i] = dnaAlphabet[r.Intn(len(dnaAlphabet))]
	}
	return string(sequence)
}
