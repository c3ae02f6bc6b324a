/*
Package align is a pairwise sequence aligner that computes
posterior-probability-weighted aligned base pairs between two
nucleotide sequences under a fixed five-state pair hidden Markov model
(see the align/hmm subpackage for its tables). It follows the familiar
allocate-a-dense-matrix/fill-it/trace-out-results shape of a classic
dynamic-programming aligner, but replaces integer edit-distance scoring
with forward/backward log-probability posteriors.

Both Pairs and PairsBanded are synchronous and allocate nothing beyond
the current call's matrices and pair list: safe to call concurrently
on disjoint inputs, with no package state beyond the read-only hmm
tables and the banded driver's MinTraceBackDiag/MinTraceGapDiags
tuning variables.
*/
package align

import "github.com/bebop/pairhmm/alphabet"

// ProbOne is the fixed-point denominator aligned-pair scores are
// expressed in: a score of ProbOne means posterior probability 1.0.
const ProbOne = 1_000_000

// PosteriorThreshold is the minimum posterior match probability a
// pair must clear to be returned.
const PosteriorThreshold = 0.01

// Pair is a posterior-weighted aligned base pair: position X in the
// first sequence and Y in the second are homologous with probability
// Score/ProbOne. X and Y are zero-based.
type Pair struct {
	Score int
	X     int
	Y     int
}

// Pairs runs full forward/backward alignment over x and y and returns
// every aligned pair whose posterior probability is at least
// PosteriorThreshold, in ascending row-major (x, y) scan order. Any
// pair of ASCII sequences is a legal input; unrecognized bytes are
// folded into the aligner's N symbol, so Pairs never fails.
func Pairs(x, y string) []Pair {
	return pairsFromEncoded(alphabet.EncodeDNA(x), alphabet.EncodeDNA(y))
}

func pairsFromEncoded(sx, sy []uint8) []Pair {
	f := newForward(sx, sy)
	b := newBackward(sx, sy)
	return posteriors(f, b, sx, sy, PosteriorThreshold)
}
