package analyzer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/oliviamtallent/DNAAnalyzer/config"
	"github.com/oliviamtallent/DNAAnalyzer/internal/dna"
)

// datasetExt is the extension of named datasets in the datasets directory
const datasetExt = ".txt"

// fastaExts are extensions of files read as FASTA
var fastaExts = map[string]bool{
	".fa":    true,
	".fasta": true,
	".fna":   true,
}

// datasetPath returns the path to a dataset. A bare name, ex: "human", is a
// file in the datasets directory. Anything with an extension or a path
// separator is used as is.
func datasetPath(name string, conf *config.Config) string {
	if filepath.Ext(name) != "" || strings.ContainsRune(name, filepath.Separator) {
		return name
	}
	return filepath.Join(conf.Datasets, name+datasetExt)
}

// datasetName is the source tag of sequences in a dataset: its file name
// without the extension.
func datasetName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// read a dataset by its name or path to a slice of Sequences.
func read(name string, conf *config.Config) ([]*dna.Sequence, error) {
	path := datasetPath(name, conf)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %v", name, err)
	}
	defer f.Close()

	var seqs []*dna.Sequence
	if fastaExts[strings.ToLower(filepath.Ext(path))] {
		seqs, err = readFASTA(f)
	} else {
		seqs, err = readDataset(f, datasetName(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %v", path, err)
	}

	if len(seqs) < 1 {
		return nil, fmt.Errorf("failed to parse sequence(s) from %s", path)
	}

	return seqs, nil
}

// readDataset reads a header line and then "<sequence> <class>" records.
// Records are whitespace separated, so they don't have to be one per line.
func readDataset(r io.Reader, source string) (seqs []*dna.Sequence, err error) {
	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	// skip blank lines before the header, ex: "sequence	class"
	for lines.Scan() {
		if strings.TrimSpace(lines.Text()) != "" {
			break
		}
	}

	var pending string // sequence waiting on its class
	lineNum := 1
	for lines.Scan() {
		lineNum++
		for _, field := range strings.Fields(lines.Text()) {
			if pending == "" {
				pending = field
				continue
			}

			class, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: failed to parse class %q: %v", lineNum, field, err)
			}
			seqs = append(seqs, dna.NewSequence(source, strings.ToUpper(pending), class))
			pending = ""
		}
	}
	if err := lines.Err(); err != nil {
		return nil, err
	}

	if pending != "" {
		return nil, fmt.Errorf("line %d: sequence without a class", lineNum)
	}

	return seqs, nil
}

// readFASTA reads every record of a FASTA file. The record ID is the source
// tag and the class is 0.
func readFASTA(r io.Reader) (seqs []*dna.Sequence, err error) {
	reader := fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA))
	for {
		s, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		l, ok := s.(*linear.Seq)
		if !ok {
			return nil, fmt.Errorf("unexpected FASTA sequence type %T", s)
		}

		raw := make([]byte, len(l.Seq))
		for i, letter := range l.Seq {
			raw[i] = byte(letter)
		}
		seqs = append(seqs, dna.NewSequence(l.Name(), strings.ToUpper(string(raw)), 0))
	}

	return seqs, nil
}
