package main

import (
	"github.com/oliviamtallent/DNAAnalyzer/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
