package dna

// Unknown is the protein symbol for a codon that isn't in the standard table,
// including the 1-2 base remainder at the end of a sequence.
const Unknown = "?"

// Stop is the symbol of the three stop codons.
const Stop = "Stop"

// codonOrder is the standard genetic code in UUU, UUC, ... GGG order. It's
// only used to build codonTable and to list the codons.
var codonOrder = [64][2]string{
	{"UUU", "Phe"}, {"UUC", "Phe"}, {"UUA", "Leu"}, {"UUG", "Leu"},
	{"UCU", "Ser"}, {"UCC", "Ser"}, {"UCA", "Ser"}, {"UCG", "Ser"},
	{"UAU", "Tyr"}, {"UAC", "Tyr"}, {"UAA", Stop}, {"UAG", Stop},
	{"UGU", "Cys"}, {"UGC", "Cys"}, {"UGA", Stop}, {"UGG", "Trp"},
	{"CUU", "Leu"}, {"CUC", "Leu"}, {"CUA", "Leu"}, {"CUG", "Leu"},
	{"CCU", "Pro"}, {"CCC", "Pro"}, {"CCA", "Pro"}, {"CCG", "Pro"},
	{"CAU", "His"}, {"CAC", "His"}, {"CAA", "Gln"}, {"CAG", "Gln"},
	{"CGU", "Arg"}, {"CGC", "Arg"}, {"CGA", "Arg"}, {"CGG", "Arg"},
	{"AUU", "Ile"}, {"AUC", "Ile"}, {"AUA", "Ile"}, {"AUG", "Met"},
	{"ACU", "Thr"}, {"ACC", "Thr"}, {"ACA", "Thr"}, {"ACG", "Thr"},
	{"AAU", "Asn"}, {"AAC", "Asn"}, {"AAA", "Lys"}, {"AAG", "Lys"},
	{"AGU", "Ser"}, {"AGC", "Ser"}, {"AGA", "Arg"}, {"AGG", "Arg"},
	{"GUU", "Val"}, {"GUC", "Val"}, {"GUA", "Val"}, {"GUG", "Val"},
	{"GCU", "Ala"}, {"GCC", "Ala"}, {"GCA", "Ala"}, {"GCG", "Ala"},
	{"GAU", "Asp"}, {"GAC", "Asp"}, {"GAA", "Glu"}, {"GAG", "Glu"},
	{"GGU", "Gly"}, {"GGC", "Gly"}, {"GGA", "Gly"}, {"GGG", "Gly"},
}

// codonTable maps an RNA codon to its three-letter amino acid (or Stop).
// It's built once and never written to afterwards.
var codonTable = func() map[string]string {
	table := make(map[string]string, len(codonOrder))
	for _, entry := range codonOrder {
		table[entry[0]] = entry[1]
	}
	return table
}()

// Translate returns the protein symbol for an RNA codon, or Unknown
// if the codon isn't exactly one of the 64 in the standard genetic code.
func Translate(codon string) string {
	if protein, ok := codonTable[codon]; ok {
		return protein
	}
	return Unknown
}

// Codons returns the 64 codons of the standard genetic code in table order.
func Codons() []string {
	codons := make([]string, len(codonOrder))
	for i, entry := range codonOrder {
		codons[i] = entry[0]
	}
	return codons
}
