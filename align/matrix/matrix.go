/*
Package matrix provides the dense log-probability matrix the
forward/backward engine fills: a single contiguous buffer addressed by
(x, y, state), exposed through an explicit accessor rather than raw
index arithmetic at every call site.
*/
package matrix

import "github.com/bebop/pairhmm/align/hmm"

// LogMatrix is a dense (lX, lY, hmm.NumStates) matrix of log-probabilities,
// stored as a single flat buffer in column-major (y, x, state) order:
// cell (x, y) starts at index (y*lX+x)*hmm.NumStates. It must remain
// contiguous; callers read and write through the slice Cell returns,
// which aliases the backing array.
type LogMatrix struct {
	lX, lY int
	cells  []float64
}

// New allocates an lX by lY matrix with every cell initialized to
// log-zero. lX and lY are typically |X|+1 and |Y|+1, the +1 accounting
// for the unique initial/terminal cell before/after each sequence.
func New(lX, lY int) *LogMatrix {
	cells := make([]float64, lX*lY*hmm.NumStates)
	for i := range cells {
		cells[i] = hmm.NegInf
	}
	return &LogMatrix{lX: lX, lY: lY, cells: cells}
}

// Dims returns the matrix's (lX, lY) extent.
func (m *LogMatrix) Dims() (lX, lY int) {
	return m.lX, m.lY
}

// Cell returns the hmm.NumStates-long slice of per-state log-probabilities
// for position (x, y). The returned slice aliases the matrix's backing
// array: writes through it mutate the matrix in place.
func (m *LogMatrix) Cell(x, y int) []float64 {
	base := (y*m.lX + x) * hmm.NumStates
	return m.cells[base : base+hmm.NumStates : base+hmm.NumStates]
}
