package analyzer

import (
	"fmt"
	"os"
	"time"

	"github.com/oliviamtallent/DNAAnalyzer/config"
	"github.com/oliviamtallent/DNAAnalyzer/internal/dna"
	"github.com/spf13/cobra"
)

// CompareCmd takes a cobra command (with its flags) and runs Compare.
func CompareCmd(cmd *cobra.Command, args []string) {
	start := time.Now()
	flags, conf := parseCmdFlags(cmd, args, 2)

	comparisons, err := Compare(flags, conf)
	if err != nil {
		stderr.Fatalln(err)
	}

	out := newOutput(flags.in, start)
	out.Comparisons = comparisons
	if err = report(os.Stdout, flags, conf, out); err != nil {
		stderr.Fatalln(err)
	}
}

// Compare reads two datasets and compares the strands at the same index of
// each, up to the number of strands in the smaller dataset.
func Compare(flags *Flags, conf *config.Config) ([]Comparison, error) {
	if len(flags.in) != 2 {
		return nil, fmt.Errorf("expected two datasets to compare, got %d", len(flags.in))
	}

	if datasetPath(flags.in[0], conf) == datasetPath(flags.in[1], conf) {
		return nil, fmt.Errorf("failed to compare %s with itself, choose two different datasets", flags.in[0])
	}

	first, err := read(flags.in[0], conf)
	if err != nil {
		return nil, err
	}

	second, err := read(flags.in[1], conf)
	if err != nil {
		return nil, err
	}

	// strands are paired by index, extras in the larger dataset are ignored
	count := len(first)
	if len(second) < count {
		count = len(second)
	}
	if conf.Verbose && len(first) != len(second) {
		fmt.Printf("comparing the first %d strands of %s (%d) and %s (%d)\n", count, flags.in[0], len(first), flags.in[1], len(second))
	}

	indexes, err := flags.selectStrands(count)
	if err != nil {
		return nil, err
	}

	comparisons := make([]Comparison, 0, len(indexes))
	for _, i := range indexes {
		comparisons = append(comparisons, compare(i, first[i], second[i]))
	}
	return comparisons, nil
}

// compare two strands at nucleotide and protein granularity.
func compare(index int, a, b *dna.Sequence) Comparison {
	return Comparison{
		Index:                index,
		A:                    a.Source(),
		B:                    b.Source(),
		NucleotideSimilarity: dna.CompareNucleotides(a, b),
		ProteinSimilarity:    dna.CompareProteins(a, b),
		NucleotideClusters:   dna.FindNucleotideClusters(a, b),
		ProteinClusters:      dna.FindProteinClusters(a, b),
		AGC:                  gcContent(a.Raw()),
		BGC:                  gcContent(b.Raw()),
	}
}
