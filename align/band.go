package align

import (
	"fmt"
	"sort"

	"github.com/bebop/pairhmm/alphabet"
)

// MinTraceBackDiag and MinTraceGapDiags are the banded driver's fixed
// tuning constants. They are package variables rather than untyped
// consts so a caller that truly needs a different tiling policy can
// override them, though the defaults match the reference model exactly.
var (
	MinTraceBackDiag = 50
	MinTraceGapDiags = 5
)

type bandCoord struct{ x, y int }

// PairsBanded tiles x and y into overlapping band x band windows,
// aligning each with Pairs and stitching the per-band pair sets into a
// single consistent, de-duplicated, monotonically advancing alignment
// bounded to O(band^2) memory regardless of sequence length. band must
// be positive; every other input is unconditionally legal, matching
// Pairs' total contract.
func PairsBanded(x, y string, band int) ([]Pair, error) {
	if band <= 0 {
		return nil, fmt.Errorf("pairhmm: band size must be positive, got %d", band)
	}
	return bandedPairs(alphabet.EncodeDNA(x), alphabet.EncodeDNA(y), band), nil
}

func bandedPairs(sx, sy []uint8, band int) []Pair {
	lenX, lenY := len(sx), len(sy)
	merged := make(map[bandCoord]int)

	offsetX, offsetY := 0, 0
	for {
		lxp := minInt(band, lenX-offsetX)
		lyp := minInt(band, lenY-offsetY)

		bandPairs := pairsFromEncoded(sx[offsetX:offsetX+lxp], sy[offsetY:offsetY+lyp])
		for i := range bandPairs {
			bandPairs[i].X += offsetX
			bandPairs[i].Y += offsetY
		}

		startDiag := offsetX + offsetY
		endDiag := startDiag + lxp + lyp
		done := offsetX+lxp == lenX && offsetY+lyp == lenY

		if !done {
			nextX, nextY, found := nextOffset(bandPairs, startDiag, endDiag, lxp, lyp)
			if found {
				offsetX, offsetY = nextX, nextY
			} else {
				done = true
			}
		}

		mergeBand(merged, bandPairs, startDiag, endDiag, done)

		if done {
			break
		}
	}

	result := make([]Pair, 0, len(merged))
	for coord, score := range merged {
		result = append(result, Pair{Score: score, X: coord.x, Y: coord.y})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].X != result[j].X {
			return result[i].X < result[j].X
		}
		return result[i].Y < result[j].Y
	})
	return result
}

// nextOffset picks the trace-back handoff point: among bandPairs whose
// diagonal x+y lies in [startDiag+(lxp+lyp)/2, endDiag-MinTraceBackDiag],
// the highest-scoring pair, with the last-scanned maximum winning ties.
// bandPairs is in ascending row-major (x, y) order, so this tie-break
// is deterministic given that scan order.
func nextOffset(bandPairs []Pair, startDiag, endDiag, lxp, lyp int) (x, y int, found bool) {
	lower := startDiag + (lxp+lyp)/2
	upper := endDiag - MinTraceBackDiag
	var bestScore int
	for _, p := range bandPairs {
		diag := p.X + p.Y
		if diag < lower || diag > upper {
			continue
		}
		if !found || p.Score >= bestScore {
			bestScore, x, y, found = p.Score, p.X, p.Y, true
		}
	}
	return x, y, found
}

// mergeBand folds a band's translated pairs into the global set,
// dropping pairs too close to the band's leading or trailing edge
// (unless that edge is the very start or very end of the whole
// alignment) and averaging the score of any pair already present from
// an earlier band.
func mergeBand(merged map[bandCoord]int, bandPairs []Pair, startDiag, endDiag int, done bool) {
	for _, p := range bandPairs {
		diag := p.X + p.Y
		if startDiag != 0 && diag < startDiag+MinTraceGapDiags {
			continue
		}
		if !done && diag > endDiag-MinTraceGapDiags {
			continue
		}
		coord := bandCoord{p.X, p.Y}
		if old, ok := merged[coord]; ok {
			merged[coord] = (old + p.Score) / 2
		} else {
			merged[coord] = p.Score
		}
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
