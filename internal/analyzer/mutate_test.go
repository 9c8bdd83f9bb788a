package analyzer

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/oliviamtallent/DNAAnalyzer/internal/dna"
)

func TestMutate(t *testing.T) {
	conf := testConfig()

	flags, err := NewFlags([]string{"human"}, "", 0, []string{"2=T"}, []string{"2=TTT"})
	if err != nil {
		t.Fatal(err)
	}

	m, err := Mutate(flags, conf)
	if err != nil {
		t.Fatal(err)
	}

	if want := []string{"nucleotide 2=T", "codon 2=TTT"}; !reflect.DeepEqual(m.Edits, want) {
		t.Errorf("Mutate() edits = %v, want %v", m.Edits, want)
	}
	if m.Original.Seq != "ATGAAAGGG" {
		t.Errorf("Mutate() changed the original strand to %s", m.Original.Seq)
	}
	if m.Mutated.Seq != "ATTAAATTT" {
		t.Errorf("Mutate() mutated strand = %s, want ATTAAATTT", m.Mutated.Seq)
	}
	if want := []string{"Stop", "Phe", "Lys"}; !reflect.DeepEqual(m.Mutated.Proteins, want) {
		t.Errorf("Mutate() mutated proteins = %v, want %v", m.Mutated.Proteins, want)
	}
	if got := m.Comparison.NucleotideSimilarity; math.Abs(got-500.0/9) > 1e-9 {
		t.Errorf("Mutate() nucleotide similarity = %v, want %v", got, 500.0/9)
	}
	if got := m.Comparison.ProteinSimilarity; math.Abs(got-100.0/3) > 1e-9 {
		t.Errorf("Mutate() protein similarity = %v, want %v", got, 100.0/3)
	}
}

func TestMutate_errors(t *testing.T) {
	conf := testConfig()
	tests := []struct {
		name            string
		strand          int
		nucleotideEdits []string
		codonEdits      []string
		outOfRange      bool
	}{
		{"no edits", 0, nil, nil, false},
		{"no strand", allStrands, []string{"0=A"}, nil, false},
		{"strand out of range", 5, []string{"0=A"}, nil, false},
		{"nucleotide out of range", 0, []string{"9=A"}, nil, true},
		{"codon out of range", 0, nil, []string{"3=ATG"}, true},
		{"partial codon", 2, nil, []string{"1=AT"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, err := NewFlags([]string{"human"}, "", tt.strand, tt.nucleotideEdits, tt.codonEdits)
			if err != nil {
				t.Fatal(err)
			}

			_, err = Mutate(flags, conf)
			if err == nil {
				t.Fatal("Mutate() error = nil, want an error")
			}
			if tt.outOfRange && !errors.Is(err, dna.ErrIndexOutOfRange) {
				t.Errorf("Mutate() error = %v, want %v", err, dna.ErrIndexOutOfRange)
			}
		})
	}
}
