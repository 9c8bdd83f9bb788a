package dna

// CompareNucleotides returns the percentage of positions, over the length of
// the shorter sequence, where a and b have the same nucleotide. Sequences
// without overlap are 0% similar.
func CompareNucleotides(a, b *Sequence) float64 {
	end := overlap(len(a.raw), len(b.raw))
	if end == 0 {
		return 0
	}

	matches := 0
	for i := 0; i < end; i++ {
		if a.raw[i] == b.raw[i] {
			matches++
		}
	}
	return float64(matches) / float64(end) * 100
}

// CompareProteins returns the percentage of positions, over the shorter
// protein sequence, where a and b share a protein symbol. Two Unknown symbols
// are never a match.
func CompareProteins(a, b *Sequence) float64 {
	end := overlap(len(a.proteins), len(b.proteins))
	if end == 0 {
		return 0
	}

	matches := 0
	for i := 0; i < end; i++ {
		if proteinsMatch(a.proteins[i], b.proteins[i]) {
			matches++
		}
	}
	return float64(matches) / float64(end) * 100
}

func proteinsMatch(a, b string) bool {
	return a == b && a != Unknown
}

// overlap is the number of positions the two sequences share.
func overlap(lenA, lenB int) int {
	if lenB < lenA {
		return lenB
	}
	return lenA
}
