package dna

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is wrapped by every error from an out of bounds
// mutation or access on a Sequence.
var ErrIndexOutOfRange = errors.New("index out of range")

// codonLength is the number of pair bases in a codon.
const codonLength = 3

// unknownSource is the source tag of sequences created without one.
const unknownSource = "Unknown"

// Sequence is a DNA strand with its pair string, codons and protein symbols.
//
// The derived fields are rebuilt in full by NewSequence and SetSequence and
// patched in place by ModifyNucleotide and ModifyCodon. A Sequence isn't safe
// for concurrent mutation.
type Sequence struct {
	// source is the dataset or record the sequence came from
	source string

	// class is the dataset's classification label
	class int

	// raw is the DNA sequence
	raw []byte

	// pair is the RNA pair of raw, same length
	pair []byte

	// codons are pair chunked every three bases (the last may be short)
	codons []string

	// proteins has one symbol per codon
	proteins []string
}

// NewSequence creates a Sequence and derives its pair, codons and proteins.
func NewSequence(source, raw string, class int) *Sequence {
	if source == "" {
		source = unknownSource
	}

	s := &Sequence{source: source, class: class}
	s.SetSequence(raw)
	return s
}

// SetSequence replaces the raw sequence and rebuilds all the derived data.
func (s *Sequence) SetSequence(raw string) {
	s.raw = []byte(raw)
	s.createPairSequence()
	s.createCodonSequence()
	s.createProteinSequence()
}

func (s *Sequence) createPairSequence() {
	s.pair = make([]byte, len(s.raw))
	for i, n := range s.raw {
		s.pair[i] = Complement(n)
	}
}

func (s *Sequence) createCodonSequence() {
	s.codons = make([]string, 0, (len(s.pair)+codonLength-1)/codonLength)
	for i := 0; i < len(s.pair); i += codonLength {
		end := i + codonLength
		if end > len(s.pair) {
			end = len(s.pair)
		}
		s.codons = append(s.codons, string(s.pair[i:end]))
	}
}

func (s *Sequence) createProteinSequence() {
	s.proteins = make([]string, len(s.codons))
	for i, codon := range s.codons {
		s.proteins[i] = Translate(codon)
	}
}

// ModifyNucleotide sets the nucleotide at index and updates its pair base,
// the codon holding it and that codon's protein. Nothing else is recomputed.
func (s *Sequence) ModifyNucleotide(index int, nucleotide byte) error {
	if index < 0 || index >= len(s.raw) {
		return fmt.Errorf("failed to modify nucleotide %d of %d: %w", index, len(s.raw), ErrIndexOutOfRange)
	}

	s.raw[index] = nucleotide
	s.pair[index] = Complement(nucleotide)

	codonIndex := index / codonLength
	codon := []byte(s.codons[codonIndex])
	codon[index%codonLength] = s.pair[index]
	s.codons[codonIndex] = string(codon)
	s.proteins[codonIndex] = Translate(s.codons[codonIndex])

	return nil
}

// ModifyCodon overwrites the nucleotides owned by the codon at codonIndex,
// ie raw[3*codonIndex:3*codonIndex+len(codon)], and re-translates its protein.
// codon has to be as long as the span it replaces (3, or less for a trailing
// partial codon).
func (s *Sequence) ModifyCodon(codonIndex int, codon string) error {
	if codonIndex < 0 || codonIndex >= len(s.codons) {
		return fmt.Errorf("failed to modify codon %d of %d: %w", codonIndex, len(s.codons), ErrIndexOutOfRange)
	}

	start := codonIndex * codonLength
	if span := len(s.codons[codonIndex]); len(codon) != span {
		return fmt.Errorf("failed to modify codon %d: %d nucleotides passed for a span of %d: %w", codonIndex, len(codon), span, ErrIndexOutOfRange)
	}

	for i := 0; i < len(codon); i++ {
		s.raw[start+i] = codon[i]
		s.pair[start+i] = Complement(codon[i])
	}
	s.codons[codonIndex] = string(s.pair[start : start+len(codon)])
	s.proteins[codonIndex] = Translate(s.codons[codonIndex])

	return nil
}

// Source is the tag of the dataset or record the sequence was read from.
func (s *Sequence) Source() string {
	return s.source
}

// Class is the informational classification label.
func (s *Sequence) Class() int {
	return s.class
}

// Len is the number of nucleotides in the sequence.
func (s *Sequence) Len() int {
	return len(s.raw)
}

// Raw returns the DNA sequence.
func (s *Sequence) Raw() string {
	return string(s.raw)
}

// Pair returns the RNA pair sequence.
func (s *Sequence) Pair() string {
	return string(s.pair)
}

// Codons returns a copy of the codons of the pair sequence.
func (s *Sequence) Codons() []string {
	return append([]string(nil), s.codons...)
}

// Proteins returns a copy of the protein symbols, one per codon.
func (s *Sequence) Proteins() []string {
	return append([]string(nil), s.proteins...)
}

// NucleotideAt returns the raw nucleotide at index.
func (s *Sequence) NucleotideAt(index int) (byte, error) {
	if index < 0 || index >= len(s.raw) {
		return 0, fmt.Errorf("failed to read nucleotide %d of %d: %w", index, len(s.raw), ErrIndexOutOfRange)
	}
	return s.raw[index], nil
}

// ProteinAt returns the protein symbol at index.
func (s *Sequence) ProteinAt(index int) (string, error) {
	if index < 0 || index >= len(s.proteins) {
		return "", fmt.Errorf("failed to read protein %d of %d: %w", index, len(s.proteins), ErrIndexOutOfRange)
	}
	return s.proteins[index], nil
}

// Clone returns a deep copy of the sequence. No slice is shared with s.
func (s *Sequence) Clone() *Sequence {
	return &Sequence{
		source:   s.source,
		class:    s.class,
		raw:      append([]byte(nil), s.raw...),
		pair:     append([]byte(nil), s.pair...),
		codons:   append([]string(nil), s.codons...),
		proteins: append([]string(nil), s.proteins...),
	}
}

func (s *Sequence) String() string {
	return "DNA Strand: " + string(s.raw)
}
