/*
Package hmm holds the fixed five-state pair hidden Markov model used by
the pairwise aligner in the parent align package: transition, emission,
start and end log-probabilities, and per-state advance geometry. It is
a pure constant table — no behavior, no caller-supplied configuration.
*/
package hmm

import "math"

// States, in the fixed order the model assigns them.
const (
	Match     = 0 // consumes one symbol from X and one from Y
	ShortGapY = 1 // consumes X only
	ShortGapX = 2 // consumes Y only
	LongGapY  = 3 // consumes X only
	LongGapX  = 4 // consumes Y only
	NumStates = 5
)

// NegInf is the log-zero sentinel: the additive identity for log-space sum.
var NegInf = math.Inf(-1)

// DX and DY give, per state, how many symbols of X and Y respectively
// that state consumes when advancing the matrix.
var (
	DX = [NumStates]int{1, 1, 0, 1, 0}
	DY = [NumStates]int{1, 0, 1, 0, 1}
)

// Log-probability constants, natural log, from the fixed model.
const (
	matchContinue  = -0.030064059121770816 // M -> M
	gapOpenShort   = -4.34381910900448     // M -> Sx, M -> Sy
	gapOpenLong    = -6.30810595366929     // M -> Lx, M -> Ly
	shortExtend    = -0.3388262689231553   // Sx -> Sx, Sy -> Sy
	shortSwitch    = -4.910694825551255    // Sx -> Sy, Sy -> Sx
	matchFromShort = -1.272871422049609    // Sx -> M, Sy -> M
	longExtend     = -0.003442492794189331 // Lx -> Lx, Ly -> Ly
	matchFromLong  = -5.673280173170473    // Lx -> M, Ly -> M
)

// Transition[from][to] is the log-probability of stepping from state
// `from` to state `to`. Entries not listed below are log-zero: only 15
// of the 25 from/to pairs are finite.
var Transition = [NumStates][NumStates]float64{
	Match:     {Match: matchContinue, ShortGapY: gapOpenShort, ShortGapX: gapOpenShort, LongGapY: gapOpenLong, LongGapX: gapOpenLong},
	ShortGapY: {Match: matchFromShort, ShortGapY: shortExtend, ShortGapX: shortSwitch},
	ShortGapX: {Match: matchFromShort, ShortGapY: shortSwitch, ShortGapX: shortExtend},
	LongGapY:  {Match: matchFromLong, LongGapY: longExtend},
	LongGapX:  {Match: matchFromLong, LongGapX: longExtend},
}

// The composite literal above leaves unlisted (from, to) pairs at their
// zero value, 0.0 — a valid-looking but wrong log-probability. Patch
// them to log-zero here.
func init() {
	for from := 0; from < NumStates; from++ {
		for to := 0; to < NumStates; to++ {
			if !finite[from][to] {
				Transition[from][to] = NegInf
			}
		}
	}
}

// finite marks which (from, to) transitions are non-log-zero.
var finite = [NumStates][NumStates]bool{
	Match:     {Match: true, ShortGapY: true, ShortGapX: true, LongGapY: true, LongGapX: true},
	ShortGapY: {Match: true, ShortGapY: true, ShortGapX: true},
	ShortGapX: {Match: true, ShortGapY: true, ShortGapX: true},
	LongGapY:  {Match: true, LongGapY: true},
	LongGapX:  {Match: true, LongGapX: true},
}

// Predecessors lists, for each destination state, the source states
// with a finite transition into it. Collapsing the sparse transition
// table this way avoids scanning dead entries in the forward/backward
// inner loop.
var Predecessors = [NumStates][]int{
	Match:     {Match, ShortGapY, ShortGapX, LongGapY, LongGapX},
	ShortGapY: {Match, ShortGapY, ShortGapX},
	ShortGapX: {Match, ShortGapY, ShortGapX},
	LongGapY:  {Match, LongGapY},
	LongGapX:  {Match, LongGapX},
}

// Start holds the log-probability of beginning the alignment in each
// state, assigned to cell (0,0).
var Start = [NumStates]float64{matchContinue, gapOpenShort, gapOpenShort, gapOpenLong, gapOpenLong}

// logOneFifth is log(1/5), the uniform end probability in every state.
const logOneFifth = -1.6094379124341

// End holds the log-probability of ending the alignment from each state.
var End = [NumStates]float64{logOneFifth, logOneFifth, logOneFifth, logOneFifth, logOneFifth}

// Emission log-probability constants, natural log.
const (
	gapEmission   = -1.6094379124341003 // uniform log(0.2), any symbol, any gap state
	matchSame     = -2.1149196655034745 // equal bases
	transversion  = -4.5691014376830479 // purine<->pyrimidine substitution
	transitionSub = -3.9833860032220842 // purine<->purine or pyrimidine<->pyrimidine
	nMatch        = -3.2188758248682006 // either base is N (index 4)
)

// GapEmission is the log-probability a gap state emits any single symbol.
const GapEmission = gapEmission

// MatchEmission[x][y] is the log-probability the match state emits the
// ordered pair (x, y), x and y in {0..4} per alphabet.EncodeDNA.
var MatchEmission = [5][5]float64{
	{matchSame, transversion, transitionSub, transversion, nMatch},
	{transversion, matchSame, transversion, transitionSub, nMatch},
	{transitionSub, transversion, matchSame, transversion, nMatch},
	{transversion, transitionSub, transversion, matchSame, nMatch},
	{nMatch, nMatch, nMatch, nMatch, nMatch},
}
