// Package dna derives pair strings, codons and protein symbols from nucleotide
// sequences and compares two sequences position by position.
package dna

// NoComplement is returned for bytes that aren't one of A, T, G or C.
const NoComplement byte = ' '

// Complement returns the RNA pair of a DNA nucleotide: A->U, T->A, G->C, C->G.
func Complement(nucleotide byte) byte {
	switch nucleotide {
	case 'A':
		return 'U'
	case 'T':
		return 'A'
	case 'G':
		return 'C'
	case 'C':
		return 'G'
	}
	return NoComplement
}

// Transcribe maps Complement over every nucleotide in raw.
func Transcribe(raw string) string {
	pair := make([]byte, len(raw))
	for i := 0; i < len(raw); i++ {
		pair[i] = Complement(raw[i])
	}
	return string(pair)
}
