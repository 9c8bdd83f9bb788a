package cmd

import (
	"github.com/oliviamtallent/DNAAnalyzer/internal/analyzer"
	"github.com/spf13/cobra"
)

// mutateCmd is for editing a strand and comparing it to the original
var mutateCmd = &cobra.Command{
	Use:                        "mutate [dataset]",
	Short:                      "Edit a strand's nucleotides or codons",
	Run:                        analyzer.MutateCmd,
	Args:                       cobra.ExactArgs(1),
	SuggestionsMinimumDistance: 2,
	Long: `Edit the nucleotides or codons of a strand and compare the result with
the unedited strand.

Nucleotide edits are applied first, in the order passed, then codon edits.
A codon edit replaces the nucleotides of that codon, ex: "--codon 1=ATG"
replaces nucleotides 3 to 5.`,
	Example: "  dnaanalyzer mutate human --strand 0 --nucleotide 4=G --codon 2=TAC",
	Aliases: []string{"edit", "set"},
}

// set flags
func init() {
	mutateCmd.Flags().IntP("strand", "n", 0, "index of the strand to edit")
	mutateCmd.Flags().StringArrayP("nucleotide", "t", nil, "nucleotide edit as index=nucleotide (repeatable)")
	mutateCmd.Flags().StringArrayP("codon", "c", nil, "codon edit as index=codon (repeatable)")
	mutateCmd.Flags().StringP("out", "o", "", "output file name <JSON>")

	RootCmd.AddCommand(mutateCmd)
}
