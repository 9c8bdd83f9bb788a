package cmd

import (
	"github.com/oliviamtallent/DNAAnalyzer/internal/analyzer"
	"github.com/spf13/cobra"
)

var strandHelp = `index of the strand to analyze. Strands are 0-indexed and
all of them are analyzed by default`

// compareCmd is for comparing the strands of two datasets
var compareCmd = &cobra.Command{
	Use:                        "compare [dataset] [dataset]",
	Short:                      "Compare the strands of two datasets",
	Run:                        analyzer.CompareCmd,
	Args:                       cobra.ExactArgs(2),
	SuggestionsMinimumDistance: 2,
	Long: `Compare the strands of two datasets at the same index.

A dataset is either a name, ex: "human" is read from <datasets>/human.txt,
or a path to a dataset or FASTA file. Strands are paired by their index
up to the number of strands in the smaller dataset.

For each pair of strands, the similarity of their nucleotides and of their
proteins is reported with up to five clusters: starts of 5-wide windows
where the strands are most similar.`,
	Example: "  dnaanalyzer compare human chimpanzee --strand 0",
	Aliases: []string{"diff", "cmp"},
}

// set flags
func init() {
	compareCmd.Flags().IntP("strand", "n", -1, strandHelp)
	compareCmd.Flags().StringP("out", "o", "", "output file name <JSON>")

	RootCmd.AddCommand(compareCmd)
}
