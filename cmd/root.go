// Package cmd is for command line interactions with the dnaanalyzer application
package cmd

import (
	"log"

	"github.com/oliviamtallent/DNAAnalyzer/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "dnaanalyzer",
	Short: `Compare DNA strands and their protein translations.
Find the similarity of two datasets' strands and their most similar clusters`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// set flags
func init() {
	// settings is an optional parameter for a settings file (that overrides the defaults)
	RootCmd.PersistentFlags().StringP("settings", "s", "", "settings file, "+config.RootSettingsFile+" if present")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "whether to log progress")

	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
}
