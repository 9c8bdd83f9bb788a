package analyzer

import (
	"fmt"
	"os"
	"time"

	"github.com/oliviamtallent/DNAAnalyzer/config"
	"github.com/spf13/cobra"
)

// MutateCmd takes a cobra command (with its flags) and runs Mutate.
func MutateCmd(cmd *cobra.Command, args []string) {
	start := time.Now()
	flags, conf := parseCmdFlags(cmd, args, 1)

	mutation, err := Mutate(flags, conf)
	if err != nil {
		stderr.Fatalln(err)
	}

	out := newOutput(flags.in, start)
	out.Mutation = mutation
	if err = report(os.Stdout, flags, conf, out); err != nil {
		stderr.Fatalln(err)
	}
}

// Mutate applies the nucleotide edits and then the codon edits in flags to
// one strand of a dataset and compares the result with the unedited strand.
func Mutate(flags *Flags, conf *config.Config) (*Mutation, error) {
	if len(flags.in) != 1 {
		return nil, fmt.Errorf("expected one dataset to mutate, got %d", len(flags.in))
	}

	if len(flags.nucleotideEdits)+len(flags.codonEdits) == 0 {
		return nil, fmt.Errorf("no edits, pass at least one --nucleotide or --codon")
	}

	if flags.strand == allStrands {
		return nil, fmt.Errorf("choose a strand to mutate with --strand")
	}

	seqs, err := read(flags.in[0], conf)
	if err != nil {
		return nil, err
	}

	indexes, err := flags.selectStrands(len(seqs))
	if err != nil {
		return nil, err
	}
	index := indexes[0]

	original := seqs[index]
	mutated := original.Clone()

	var applied []string
	for _, e := range flags.nucleotideEdits {
		if err := mutated.ModifyNucleotide(e.index, e.value[0]); err != nil {
			return nil, fmt.Errorf("failed to apply nucleotide edit %s: %w", e, err)
		}
		applied = append(applied, "nucleotide "+e.String())
	}
	for _, e := range flags.codonEdits {
		if err := mutated.ModifyCodon(e.index, e.value); err != nil {
			return nil, fmt.Errorf("failed to apply codon edit %s: %w", e, err)
		}
		applied = append(applied, "codon "+e.String())
	}

	if conf.Verbose {
		fmt.Printf("applied %d edits to strand %d of %s\n", len(applied), index, flags.in[0])
	}

	return &Mutation{
		Edits:      applied,
		Original:   newStrand(index, original),
		Mutated:    newStrand(index, mutated),
		Comparison: compare(index, original, mutated),
	}, nil
}
