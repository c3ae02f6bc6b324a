package align_test

import (
	"testing"

	"github.com/bebop/pairhmm/align"
)

func pairScore(pairs []align.Pair, x, y int) (int, bool) {
	for _, p := range pairs {
		if p.X == x && p.Y == y {
			return p.Score, true
		}
	}
	return 0, false
}

// E1: two empty sequences produce no pairs.
func TestPairsEmptySequences(t *testing.T) {
	pairs := align.Pairs("", "")
	if len(pairs) != 0 {
		t.Fatalf("Pairs(\"\", \"\") = %v, want empty", pairs)
	}
}

// E2: identical sequences align on the diagonal with high confidence.
func TestPairsIdentical(t *testing.T) {
	pairs := align.Pairs("ACGT", "ACGT")
	for i := 0; i < 4; i++ {
		score, ok := pairScore(pairs, i, i)
		if !ok {
			t.Fatalf("missing pair (%d,%d) in %v", i, i, pairs)
		}
		if score < 990000 {
			t.Errorf("pair (%d,%d) score = %d, want >= 990000", i, i, score)
		}
	}
}

// E3: a single deletion in Y still recovers the pairs flanking the gap.
func TestPairsSingleDeletion(t *testing.T) {
	pairs := align.Pairs("ACGT", "AGT")
	for _, want := range []struct{ x, y int }{{0, 0}, {2, 1}, {3, 2}} {
		score, ok := pairScore(pairs, want.x, want.y)
		if !ok {
			t.Fatalf("missing pair (%d,%d) in %v", want.x, want.y, pairs)
		}
		if score < 500000 {
			t.Errorf("pair (%d,%d) score = %d, want >= 500000", want.x, want.y, score)
		}
	}
	if score, ok := pairScore(pairs, 1, 0); ok && score >= align.ProbOne/2 {
		t.Errorf("pair (1,0) score = %d, want below threshold", score)
	}
}

// E4: maximally divergent sequences never produce a confident pair.
func TestPairsNoHomology(t *testing.T) {
	pairs := align.Pairs("AAAA", "TTTT")
	for _, p := range pairs {
		if p.Score >= 100000 {
			t.Errorf("pair (%d,%d) score = %d, want < 100000", p.X, p.Y, p.Score)
		}
	}
}

// Property 2: every emitted pair's score and coordinates are in bounds.
func TestPairsInBounds(t *testing.T) {
	x, y := "ACGTACGTAC", "ACGTTACGAC"
	pairs := align.Pairs(x, y)
	for _, p := range pairs {
		if p.Score < 0 || p.Score > align.ProbOne {
			t.Errorf("pair %v score out of [0, ProbOne]", p)
		}
		if p.X < 0 || p.X >= len(x) {
			t.Errorf("pair %v X out of bounds for len(x)=%d", p, len(x))
		}
		if p.Y < 0 || p.Y >= len(y) {
			t.Errorf("pair %v Y out of bounds for len(y)=%d", p, len(y))
		}
	}
}

// Property 3: no (x, y) appears twice in the output.
func TestPairsUnique(t *testing.T) {
	pairs := align.Pairs("ACGTACGTACGTACGT", "ACGTACGTTACGTACG")
	seen := make(map[align.Pair]bool)
	for _, p := range pairs {
		key := align.Pair{X: p.X, Y: p.Y}
		if seen[key] {
			t.Fatalf("duplicate pair (%d,%d)", p.X, p.Y)
		}
		seen[key] = true
	}
}
