/*
Package pairhmm computes posterior-probability-weighted alignments
between pairs of nucleotide sequences.

Given two sequences X and Y, it runs the forward and backward
algorithms over a fixed five-state pair hidden Markov model and
returns, for every (x, y) position pair whose posterior match
probability clears a fixed threshold, that position pair and its
probability. This is the "realign" core of a whole-genome aligner: it
has no opinion about file formats, phylogenies, or how many sequences
are being compared overall, and no multi-sequence or progressive
alignment logic. Callers that need those build them on top.

Two entry points cover the full range of input sizes:

  - align.Pairs runs the quadratic-memory full forward/backward
    algorithm, appropriate for sequences up to a few thousand bases.
  - align.PairsBanded tiles the same computation into overlapping
    bands along the main diagonal and stitches the results back
    together, trading some coverage at band edges for memory bounded
    by the band size rather than the sequence length.

The fixed model's tables live in align/hmm; log-space arithmetic lives
in align/logspace; the dense per-cell storage lives in align/matrix.
None of those subpackages are meant to be used directly — align is the
public surface.
*/
package pairhmm
