package align

import (
	"log"
	"math"

	"github.com/bebop/pairhmm/align/hmm"
	"github.com/bebop/pairhmm/align/logspace"
	"github.com/bebop/pairhmm/align/matrix"
)

// consistencyTolerance bounds how far the forward and backward total
// log-probabilities may disagree, relative to the magnitude of their
// mean, before it signals a bug in this package rather than a property
// of the input. Comparing the two totals directly in log-space (rather
// than exponentiating them back to real probabilities first) avoids
// spurious underflow-to-zero on long sequences, where both totals are
// large negative numbers.
const consistencyTolerance = 1e-3

// posteriors extracts every aligned pair whose posterior match
// probability clears threshold, scanning (x, y) in ascending row-major
// order — the order the banded driver's tie-break (§4.E) depends on.
func posteriors(f, b *matrix.LogMatrix, sx, sy []uint8, threshold float64) []Pair {
	lX, lY := f.Dims()

	totalForward := total(hmm.End, f.Cell(lX-1, lY-1))
	totalBackward := total(hmm.Start, b.Cell(0, 0))
	totalProb := (totalForward + totalBackward) / 2
	if math.Abs(totalForward-totalBackward) >= consistencyTolerance*math.Abs(totalProb) {
		log.Fatalf("pairhmm: forward/backward totals disagree: %v vs %v", totalForward, totalBackward)
	}

	var pairs []Pair
	for x := 1; x < lX; x++ {
		for y := 1; y < lY; y++ {
			fCorner := f.Cell(x-1, y-1)
			bCell := b.Cell(x, y)
			eP := hmm.MatchEmission[sx[x-1]][sy[y-1]]

			score := hmm.NegInf
			for _, from := range hmm.Predecessors[hmm.Match] {
				score = logspace.LogAdd(score, fCorner[from]+hmm.Transition[from][hmm.Match]+eP+bCell[hmm.Match])
			}

			p := math.Exp(score - totalProb)
			if p < threshold {
				continue
			}
			if p > 1 {
				p = 1
			} else if p < 0 {
				p = 0
			}
			pairs = append(pairs, Pair{Score: int(math.Floor(p * ProbOne)), X: x - 1, Y: y - 1})
		}
	}
	return pairs
}
