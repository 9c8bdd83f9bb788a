package analyzer

import (
	"fmt"
	"os"
	"time"

	"github.com/oliviamtallent/DNAAnalyzer/config"
	"github.com/spf13/cobra"
)

// TranslateCmd takes a cobra command (with its flags) and runs Translate.
func TranslateCmd(cmd *cobra.Command, args []string) {
	start := time.Now()
	flags, conf := parseCmdFlags(cmd, args, 1)

	strands, err := Translate(flags, conf)
	if err != nil {
		stderr.Fatalln(err)
	}

	out := newOutput(flags.in, start)
	out.Strands = strands
	if err = report(os.Stdout, flags, conf, out); err != nil {
		stderr.Fatalln(err)
	}
}

// Translate reads a dataset and returns the pair sequence, codons and
// proteins of its strands.
func Translate(flags *Flags, conf *config.Config) ([]Strand, error) {
	if len(flags.in) != 1 {
		return nil, fmt.Errorf("expected one dataset to translate, got %d", len(flags.in))
	}

	seqs, err := read(flags.in[0], conf)
	if err != nil {
		return nil, err
	}

	indexes, err := flags.selectStrands(len(seqs))
	if err != nil {
		return nil, err
	}

	strands := make([]Strand, 0, len(indexes))
	for _, i := range indexes {
		strands = append(strands, newStrand(i, seqs[i]))
	}
	return strands, nil
}
