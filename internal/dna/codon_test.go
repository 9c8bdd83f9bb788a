package dna

import "testing"

// standardCode is the standard genetic code written out by amino acid.
var standardCode = map[string][]string{
	"Phe":  {"UUU", "UUC"},
	"Leu":  {"UUA", "UUG", "CUU", "CUC", "CUA", "CUG"},
	"Ser":  {"UCU", "UCC", "UCA", "UCG", "AGU", "AGC"},
	"Tyr":  {"UAU", "UAC"},
	"Stop": {"UAA", "UAG", "UGA"},
	"Cys":  {"UGU", "UGC"},
	"Trp":  {"UGG"},
	"Pro":  {"CCU", "CCC", "CCA", "CCG"},
	"His":  {"CAU", "CAC"},
	"Gln":  {"CAA", "CAG"},
	"Arg":  {"CGU", "CGC", "CGA", "CGG", "AGA", "AGG"},
	"Ile":  {"AUU", "AUC", "AUA"},
	"Met":  {"AUG"},
	"Thr":  {"ACU", "ACC", "ACA", "ACG"},
	"Asn":  {"AAU", "AAC"},
	"Lys":  {"AAA", "AAG"},
	"Val":  {"GUU", "GUC", "GUA", "GUG"},
	"Ala":  {"GCU", "GCC", "GCA", "GCG"},
	"Asp":  {"GAU", "GAC"},
	"Glu":  {"GAA", "GAG"},
	"Gly":  {"GGU", "GGC", "GGA", "GGG"},
}

func TestTranslate(t *testing.T) {
	seen := 0
	for protein, codons := range standardCode {
		for _, codon := range codons {
			seen++
			if got := Translate(codon); got != protein {
				t.Errorf("Translate(%q) = %q, want %q", codon, got, protein)
			}
		}
	}

	if seen != 64 {
		t.Fatalf("standard code has %d codons, want 64", seen)
	}
}

func TestTranslate_unknown(t *testing.T) {
	tests := []struct {
		name  string
		codon string
	}{
		{"empty", ""},
		{"one base remainder", "U"},
		{"two base remainder", "UA"},
		{"too long", "UACG"},
		{"DNA codon", "ATG"},
		{"lower case", "uac"},
		{"uncomplemented base", "U A"},
		{"ambiguous", "NNN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Translate(tt.codon); got != Unknown {
				t.Errorf("Translate(%q) = %q, want %q", tt.codon, got, Unknown)
			}
		})
	}
}

func TestCodons(t *testing.T) {
	codons := Codons()
	if len(codons) != 64 {
		t.Fatalf("Codons() returned %d codons, want 64", len(codons))
	}
	if codons[0] != "UUU" || codons[63] != "GGG" {
		t.Errorf("Codons() = [%s ... %s], want [UUU ... GGG]", codons[0], codons[63])
	}

	unique := make(map[string]bool)
	for _, c := range codons {
		if unique[c] {
			t.Errorf("Codons() repeats %s", c)
		}
		unique[c] = true

		if Translate(c) == Unknown {
			t.Errorf("Translate(%q) = %q for a table codon", c, Unknown)
		}
	}

	// callers can't write into the table
	codons[0] = "GGG"
	if Translate("UUU") != "Phe" {
		t.Error("mutating Codons() changed the table")
	}
}
