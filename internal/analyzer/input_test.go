package analyzer

import (
	"reflect"
	"testing"
)

func Test_inputParser_parseEdits(t *testing.T) {
	type args struct {
		raw        []string
		nucleotide bool
	}
	tests := []struct {
		name    string
		args    args
		want    []edit
		wantErr bool
	}{
		{
			"nucleotide edits",
			args{[]string{"0=A", " 12 = g "}, true},
			[]edit{{0, "A"}, {12, "G"}},
			false,
		},
		{
			"codon edit",
			args{[]string{"3=tac"}, false},
			[]edit{{3, "TAC"}},
			false,
		},
		{
			"nucleotide edit with a codon",
			args{[]string{"3=TAC"}, true},
			nil,
			true,
		},
		{
			"missing value",
			args{[]string{"3="}, false},
			nil,
			true,
		},
		{
			"no separator",
			args{[]string{"3A"}, true},
			nil,
			true,
		},
		{
			"index isn't a number",
			args{[]string{"x=A"}, true},
			nil,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &inputParser{}
			got, err := p.parseEdits(tt.args.raw, tt.args.nucleotide)
			if (err != nil) != tt.wantErr {
				t.Fatalf("inputParser.parseEdits() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("inputParser.parseEdits() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFlags_selectStrands(t *testing.T) {
	tests := []struct {
		name    string
		strand  int
		count   int
		want    []int
		wantErr bool
	}{
		{"all strands", allStrands, 3, []int{0, 1, 2}, false},
		{"no strands", allStrands, 0, []int{}, false},
		{"one strand", 1, 3, []int{1}, false},
		{"past the last strand", 3, 3, nil, true},
		{"negative strand", -2, 3, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Flags{strand: tt.strand}
			got, err := f.selectStrands(tt.count)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Flags.selectStrands() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Flags.selectStrands() = %v, want %v", got, tt.want)
			}
		})
	}
}
