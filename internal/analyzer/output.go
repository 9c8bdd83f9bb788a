package analyzer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/bebop/poly/checks"
	"github.com/oliviamtallent/DNAAnalyzer/config"
	"github.com/oliviamtallent/DNAAnalyzer/internal/dna"
)

// Strand is a sequence with its derived data.
type Strand struct {
	// Index of the strand in its dataset
	Index int `json:"index"`

	// Source is the dataset or FASTA record it came from
	Source string `json:"source"`

	// Class is the dataset's classification label
	Class int `json:"class"`

	// Seq is the DNA sequence
	Seq string `json:"seq"`

	// Pair is the RNA pair sequence
	Pair string `json:"pair"`

	// Codons of the pair sequence
	Codons []string `json:"codons"`

	// Proteins has one three-letter symbol per codon, "Stop" or "?"
	Proteins []string `json:"proteins"`

	// GC is the fraction of G and C nucleotides
	GC float64 `json:"gc"`
}

// Comparison is the similarity between two strands at the same index of two datasets.
type Comparison struct {
	// Index of the strands in their datasets
	Index int `json:"index"`

	// A is the strand from the first dataset
	A string `json:"a"`

	// B is the strand from the second dataset
	B string `json:"b"`

	// NucleotideSimilarity is the % of shared nucleotides
	NucleotideSimilarity float64 `json:"nucleotideSimilarity"`

	// ProteinSimilarity is the % of shared proteins
	ProteinSimilarity float64 `json:"proteinSimilarity"`

	// NucleotideClusters are the starts of the most similar 5-nucleotide windows
	NucleotideClusters []int `json:"nucleotideClusters"`

	// ProteinClusters are the starts of the most similar 5-protein windows
	ProteinClusters []int `json:"proteinClusters"`

	// AGC and BGC are the GC fractions of A and B
	AGC float64 `json:"aGC"`
	BGC float64 `json:"bGC"`
}

// Mutation is a strand after edits and its similarity to the strand before them.
type Mutation struct {
	// Edits applied, in order
	Edits []string `json:"edits"`

	// Original strand
	Original Strand `json:"original"`

	// Mutated strand
	Mutated Strand `json:"mutated"`

	// Comparison of the original and mutated strands
	Comparison Comparison `json:"comparison"`
}

// Output is a struct containing the results of a command.
type Output struct {
	// Time, ex: "2018/01/01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds it took to execute the command
	Execution float64 `json:"execution"`

	// Datasets that were read
	Datasets []string `json:"datasets"`

	// Comparisons from 'compare'
	Comparisons []Comparison `json:"comparisons,omitempty"`

	// Strands from 'translate'
	Strands []Strand `json:"strands,omitempty"`

	// Mutation from 'mutate'
	Mutation *Mutation `json:"mutation,omitempty"`
}

// newOutput stamps an Output with the current time and the seconds since start.
func newOutput(datasets []string, start time.Time) Output {
	// store save time, using same format as log.Println https://golang.org/pkg/log/#Println
	t := time.Now()
	return Output{
		Time: fmt.Sprintf(
			"%d/%02d/%02d %02d:%02d:%02d",
			t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
		),
		Execution: time.Since(start).Seconds(),
		Datasets:  datasets,
	}
}

// newStrand summarizes a sequence.
func newStrand(index int, s *dna.Sequence) Strand {
	return Strand{
		Index:    index,
		Source:   s.Source(),
		Class:    s.Class(),
		Seq:      s.Raw(),
		Pair:     s.Pair(),
		Codons:   s.Codons(),
		Proteins: s.Proteins(),
		GC:       gcContent(s.Raw()),
	}
}

// gcContent is the GC fraction of a sequence, 0 for an empty one.
func gcContent(seq string) float64 {
	if seq == "" {
		return 0
	}
	return checks.GcContent(seq)
}

// writeJSON serializes the output and writes it to filename (if not empty).
func writeJSON(filename string, out Output) (output []byte, err error) {
	output, err = json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize output: %v", err)
	}

	if filename == "" {
		return output, nil
	}

	if err = os.WriteFile(filename, output, 0644); err != nil {
		return nil, fmt.Errorf("failed to write the output: %v", err)
	}
	return output, nil
}

// report writes the output to stdout, in the format from the settings, and
// to the JSON file in flags (if set).
func report(w io.Writer, flags *Flags, conf *config.Config, out Output) error {
	output, err := writeJSON(flags.out, out)
	if err != nil {
		return err
	}

	if conf.Output.Format == config.FormatJSON {
		_, err = fmt.Fprintln(w, string(output))
		return err
	}

	switch {
	case out.Mutation != nil:
		return writeMutationTable(w, conf, out.Mutation)
	case len(out.Strands) > 0:
		return writeStrandTable(w, out.Strands)
	default:
		return writeComparisonTable(w, conf, out.Comparisons)
	}
}

// writeComparisonTable writes one row per comparison.
func writeComparisonTable(w io.Writer, conf *config.Config, comparisons []Comparison) error {
	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "strand\ta\tb\tnucleotide similarity\tnucleotide clusters\tprotein similarity\tprotein clusters\t\n")
	for _, c := range comparisons {
		fmt.Fprintf(
			tw,
			"%d\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			c.Index,
			c.A,
			c.B,
			conf.Percent(c.NucleotideSimilarity),
			joinInts(c.NucleotideClusters),
			conf.Percent(c.ProteinSimilarity),
			joinInts(c.ProteinClusters),
		)
	}
	return tw.Flush()
}

// writeStrandTable writes each strand's sequences, one per line.
func writeStrandTable(w io.Writer, strands []Strand) error {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	for _, s := range strands {
		fmt.Fprintf(tw, "strand\t%d (%s, class %d, gc %.2f)\n", s.Index, s.Source, s.Class, s.GC)
		fmt.Fprintf(tw, "seq\t%s\n", s.Seq)
		fmt.Fprintf(tw, "pair\t%s\n", s.Pair)
		fmt.Fprintf(tw, "codons\t%s\n", strings.Join(s.Codons, " "))
		fmt.Fprintf(tw, "proteins\t%s\n\n", strings.Join(s.Proteins, " "))
	}
	return tw.Flush()
}

// writeMutationTable writes the strand before and after its edits and their similarity.
func writeMutationTable(w io.Writer, conf *config.Config, m *Mutation) error {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	fmt.Fprintf(tw, "edits\t%s\n", strings.Join(m.Edits, ", "))
	fmt.Fprintf(tw, "seq\t%s\n", m.Original.Seq)
	fmt.Fprintf(tw, "mutated\t%s\n", m.Mutated.Seq)
	fmt.Fprintf(tw, "proteins\t%s\n", strings.Join(m.Original.Proteins, " "))
	fmt.Fprintf(tw, "mutated\t%s\n", strings.Join(m.Mutated.Proteins, " "))
	fmt.Fprintf(tw, "nucleotide similarity\t%s\n", conf.Percent(m.Comparison.NucleotideSimilarity))
	fmt.Fprintf(tw, "protein similarity\t%s\n", conf.Percent(m.Comparison.ProteinSimilarity))
	fmt.Fprintf(tw, "nucleotide clusters\t%s\n", joinInts(m.Comparison.NucleotideClusters))
	fmt.Fprintf(tw, "protein clusters\t%s\n", joinInts(m.Comparison.ProteinClusters))
	return tw.Flush()
}

// joinInts joins cluster starts with commas, "-" if there are none.
func joinInts(ints []int) string {
	if len(ints) == 0 {
		return "-"
	}

	strs := make([]string, len(ints))
	for i, n := range ints {
		strs[i] = fmt.Sprint(n)
	}
	return strings.Join(strs, ",")
}
