// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	// RootSettingsFile is the settings file read when --settings isn't set.
	// It's optional, unlike a settings file passed explicitly.
	RootSettingsFile = "settings.yaml"

	// envPrefix is the prefix of environment variables that override settings,
	// ex: DNAANALYZER_OUTPUT_PRECISION=2
	envPrefix = "DNAANALYZER"

	// FormatTable is for aligned, human readable reports on stdout
	FormatTable = "table"

	// FormatJSON is for writing reports to stdout as JSON
	FormatJSON = "json"
)

// OutputConfig is settings for reports
type OutputConfig struct {
	// the number of decimal places in similarity percentages
	Precision int `mapstructure:"precision"`

	// the format of reports on stdout: "table" or "json"
	Format string `mapstructure:"format"`
}

// Config is the root-level settings struct and is a mix
// of settings available in settings.yaml and those
// available from the command line
type Config struct {
	// Datasets is the directory with named datasets, ex: "human" is read from
	// <Datasets>/human.txt
	Datasets string `mapstructure:"datasets"`

	// Verbose is whether to log progress to stdout
	Verbose bool `mapstructure:"verbose"`

	// Output settings
	Output OutputConfig `mapstructure:"output"`
}

// New returns a new Config struct populated by Viper settings (the settings
// file, DNAANALYZER_ environment variables and/or command line arguments)
func New() *Config {
	c, err := load(viper.GetViper())
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}
	return c
}

// load reads settings into a Config from v, falling back to defaults.
func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("datasets", "datasets")
	v.SetDefault("verbose", false)
	v.SetDefault("output.precision", 6)
	v.SetDefault("output.format", FormatTable)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	settings := v.GetString("settings")
	explicit := settings != ""
	if !explicit {
		settings = RootSettingsFile
	}

	if _, err := os.Stat(settings); err == nil || explicit {
		v.SetConfigFile(settings)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %v", settings, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// validate checks the settings that can't be used as is
func (c *Config) validate() error {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format != FormatTable && c.Output.Format != FormatJSON {
		return fmt.Errorf("unknown output format %q, expected %q or %q", c.Output.Format, FormatTable, FormatJSON)
	}

	if c.Output.Precision < 0 {
		return fmt.Errorf("output precision has to be positive, got %d", c.Output.Precision)
	}

	return nil
}

// Percent formats a similarity percentage using the output precision
func (c *Config) Percent(p float64) string {
	return fmt.Sprintf("%.*f%%", c.Output.Precision, p)
}
