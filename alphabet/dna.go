package alphabet

// Nucleotide codes used by the pair-HMM aligner. Unlike the general
// Alphabet type above, this mapping is total: any byte that isn't a
// recognized base is folded into N rather than rejected.
const (
	baseA uint8 = iota
	baseC
	baseG
	baseT
	baseN
)

// EncodeDNA maps a nucleotide sequence to small integers in {0..4},
// case-insensitively: A/a->0, C/c->1, G/g->2, T/t->3, anything else->4.
// It never fails; ambiguity codes, gaps, and whitespace all land on N.
func EncodeDNA(sequence string) []uint8 {
	encoded := make([]uint8, len(sequence))
	for i := 0; i < len(sequence); i++ {
		encoded[i] = encodeDNAByte(sequence[i])
	}
	return encoded
}

func encodeDNAByte(b byte) uint8 {
	switch b {
	case 'A', 'a':
		return baseA
	case 'C', 'c':
		return baseC
	case 'G', 'g':
		return baseG
	case 'T', 't':
		return baseT
	default:
		return baseN
	}
}
