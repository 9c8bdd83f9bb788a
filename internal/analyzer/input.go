package analyzer

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/oliviamtallent/DNAAnalyzer/config"
	"github.com/spf13/cobra"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// allStrands is the strand index for "every strand in the dataset(s)"
const allStrands = -1

// Flags contains parsed cobra Flags like "out", "strand", etc that are used by multiple commands.
type Flags struct {
	// datasets to read, by name or path
	in []string

	// the name of the file to write the JSON output to (optional)
	out string

	// the index of the strand to analyze, or allStrands
	strand int

	// edits to make with ModifyNucleotide, in order
	nucleotideEdits []edit

	// edits to make with ModifyCodon, in order (after the nucleotide edits)
	codonEdits []edit
}

// edit is a change to a sequence, ex: "12=A" or "4=ATG"
type edit struct {
	// index of the nucleotide or codon
	index int

	// replacement nucleotide(s)
	value string
}

func (e edit) String() string {
	return strconv.Itoa(e.index) + "=" + e.value
}

// inputParser contains methods for parsing flags from the input &cobra.Command.
type inputParser struct{}

// NewFlags makes a new flags object manually. for testing.
func NewFlags(in []string, out string, strand int, nucleotideEdits, codonEdits []string) (*Flags, error) {
	p := inputParser{}

	nEdits, err := p.parseEdits(nucleotideEdits, true)
	if err != nil {
		return nil, err
	}

	cEdits, err := p.parseEdits(codonEdits, false)
	if err != nil {
		return nil, err
	}

	return &Flags{
		in:              in,
		out:             out,
		strand:          strand,
		nucleotideEdits: nEdits,
		codonEdits:      cEdits,
	}, nil
}

// parseCmdFlags gathers the datasets, out path, etc from a cobra cmd object
// returns Flags and a Config struct for the compare, translate and mutate commands.
func parseCmdFlags(cmd *cobra.Command, args []string, datasets int) (*Flags, *config.Config) {
	var err error
	fs := &Flags{} // parsed flags
	p := inputParser{}
	c := config.New()

	if len(args) != datasets {
		cmd.Help()
		stderr.Fatalf("\nexpected %d dataset(s), got %d", datasets, len(args))
	}
	fs.in = args

	if fs.out, err = cmd.Flags().GetString("out"); err != nil {
		fs.out = "" // no output file
	}

	if fs.strand, err = cmd.Flags().GetInt("strand"); err != nil {
		fs.strand = allStrands
	}

	if nEdits, err := cmd.Flags().GetStringArray("nucleotide"); err == nil {
		if fs.nucleotideEdits, err = p.parseEdits(nEdits, true); err != nil {
			cmd.Help()
			stderr.Fatal(err)
		}
	}

	if cEdits, err := cmd.Flags().GetStringArray("codon"); err == nil {
		if fs.codonEdits, err = p.parseEdits(cEdits, false); err != nil {
			cmd.Help()
			stderr.Fatal(err)
		}
	}

	return fs, c
}

// parseEdits turns "index=value" strings into edits. A nucleotide edit has a
// single character value.
func (p *inputParser) parseEdits(raw []string, nucleotide bool) (edits []edit, err error) {
	for _, r := range raw {
		fields := strings.SplitN(r, "=", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("failed to parse edit %q, expected index=value", r)
		}

		index, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("failed to parse index of edit %q: %v", r, err)
		}

		value := strings.ToUpper(strings.TrimSpace(fields[1]))
		if value == "" {
			return nil, fmt.Errorf("edit %q has no nucleotides", r)
		}
		if nucleotide && len(value) != 1 {
			return nil, fmt.Errorf("nucleotide edit %q has to be a single nucleotide", r)
		}

		edits = append(edits, edit{index: index, value: value})
	}
	return
}

// selectStrands returns the indexes of strands to analyze in a dataset
// (or pair of datasets) with count strands.
func (f *Flags) selectStrands(count int) ([]int, error) {
	if f.strand == allStrands {
		indexes := make([]int, count)
		for i := range indexes {
			indexes[i] = i
		}
		return indexes, nil
	}

	if f.strand < 0 || f.strand >= count {
		return nil, fmt.Errorf("strand %d is out of range, there are %d strands", f.strand, count)
	}
	return []int{f.strand}, nil
}
