package align

import (
	"github.com/bebop/pairhmm/align/hmm"
	"github.com/bebop/pairhmm/align/logspace"
	"github.com/bebop/pairhmm/align/matrix"
)

// newForward fills the forward matrix over encoded sequences sx, sy.
// Cell (0,0) is seeded with the model's start probabilities; every
// other cell accumulates log(exp(...)+exp(...)) contributions from its
// valid predecessors in ascending (x, y) row-major order.
func newForward(sx, sy []uint8) *matrix.LogMatrix {
	lX, lY := len(sx)+1, len(sy)+1
	m := matrix.New(lX, lY)
	copy(m.Cell(0, 0), hmm.Start[:])

	for x := 0; x < lX; x++ {
		for y := 0; y < lY; y++ {
			if x == 0 && y == 0 {
				continue // seeded above; every predecessor here is out of bounds anyway
			}
			cell := m.Cell(x, y)
			for to := 0; to < hmm.NumStates; to++ {
				px, py := x-hmm.DX[to], y-hmm.DY[to]
				if px < 0 || py < 0 {
					continue
				}
				eP := emission(sx, sy, x, y, to)
				pCell := m.Cell(px, py)
				acc := cell[to]
				for _, from := range hmm.Predecessors[to] {
					acc = logspace.LogAdd(acc, pCell[from]+hmm.Transition[from][to]+eP)
				}
				cell[to] = acc
			}
		}
	}
	return m
}

// newBackward fills the backward matrix over encoded sequences sx, sy.
// Cell (lX-1, lY-1) is seeded with the model's end probabilities;
// traversal runs in descending (x, y) order, and each visited cell
// pushes its contribution into its predecessor cells rather than
// pulling from successors, mirroring the forward direction reversed.
func newBackward(sx, sy []uint8) *matrix.LogMatrix {
	lX, lY := len(sx)+1, len(sy)+1
	m := matrix.New(lX, lY)
	copy(m.Cell(lX-1, lY-1), hmm.End[:])

	for x := lX - 1; x >= 0; x-- {
		for y := lY - 1; y >= 0; y-- {
			cell := m.Cell(x, y)
			for to := 0; to < hmm.NumStates; to++ {
				px, py := x-hmm.DX[to], y-hmm.DY[to]
				if px < 0 || py < 0 {
					continue
				}
				eP := emission(sx, sy, x, y, to)
				pCell := m.Cell(px, py)
				for _, from := range hmm.Predecessors[to] {
					pCell[from] = logspace.LogAdd(pCell[from], cell[to]+hmm.Transition[from][to]+eP)
				}
			}
		}
	}
	return m
}

// emission returns the log-probability state `to` emits at matrix
// position (x, y). Gap states emit a single uniform symbol; the match
// state emits the ordered pair (sx[x-1], sy[y-1]).
func emission(sx, sy []uint8, x, y, to int) float64 {
	if to == hmm.Match {
		return hmm.MatchEmission[sx[x-1]][sy[y-1]]
	}
	return hmm.GapEmission
}

// total returns logAdd_i(weights[i] + corner[i]) over all states.
func total(weights [hmm.NumStates]float64, corner []float64) float64 {
	sum := hmm.NegInf
	for i := 0; i < hmm.NumStates; i++ {
		sum = logspace.LogAdd(sum, weights[i]+corner[i])
	}
	return sum
}
