package cmd

import (
	"github.com/oliviamtallent/DNAAnalyzer/internal/analyzer"
	"github.com/spf13/cobra"
)

// translateCmd is for logging the pair sequence, codons and proteins of a dataset's strands
var translateCmd = &cobra.Command{
	Use:                        "translate [dataset]",
	Short:                      "Translate the strands of a dataset to proteins",
	Run:                        analyzer.TranslateCmd,
	Args:                       cobra.ExactArgs(1),
	SuggestionsMinimumDistance: 2,
	Long: `Log the pair (RNA) sequence, codons and proteins of each strand in a dataset.

Codons that aren't in the standard genetic code, like a 1-2 base remainder
at the end of a strand, are logged as "?"`,
	Example: "  dnaanalyzer translate dog --strand 3",
	Aliases: []string{"seq", "proteins"},
}

// set flags
func init() {
	translateCmd.Flags().IntP("strand", "n", -1, strandHelp)
	translateCmd.Flags().StringP("out", "o", "", "output file name <JSON>")

	RootCmd.AddCommand(translateCmd)
}
