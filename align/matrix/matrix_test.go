package matrix_test

import (
	"math"
	"testing"

	"github.com/bebop/pairhmm/align/hmm"
	"github.com/bebop/pairhmm/align/matrix"
)

func TestNewInitializesToLogZero(t *testing.T) {
	m := matrix.New(3, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 3; x++ {
			for _, p := range m.Cell(x, y) {
				if !math.IsInf(p, -1) {
					t.Fatalf("Cell(%d,%d) = %v, want all log-zero", x, y, m.Cell(x, y))
				}
			}
		}
	}
}

func TestCellAliasesBackingArray(t *testing.T) {
	m := matrix.New(2, 2)
	m.Cell(1, 1)[hmm.Match] = -3.5
	if got := m.Cell(1, 1)[hmm.Match]; got != -3.5 {
		t.Errorf("Cell(1,1)[Match] = %v, want -3.5", got)
	}
	// Neighboring cells must be untouched.
	if got := m.Cell(0, 1)[hmm.Match]; !math.IsInf(got, -1) {
		t.Errorf("Cell(0,1)[Match] = %v, want log-zero", got)
	}
}

func TestDims(t *testing.T) {
	m := matrix.New(5, 7)
	lX, lY := m.Dims()
	if lX != 5 || lY != 7 {
		t.Errorf("Dims() = (%d,%d), want (5,7)", lX, lY)
	}
}
