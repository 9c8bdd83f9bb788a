// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func Test_load(t *testing.T) {
	dir := t.TempDir()

	settings := filepath.Join(dir, "settings.yaml")
	contents := "datasets: /data/dna\noutput:\n  precision: 2\n  format: json\n"
	if err := os.WriteFile(settings, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("output: [precision"), 0644); err != nil {
		t.Fatal(err)
	}

	badFormat := filepath.Join(dir, "format.yaml")
	if err := os.WriteFile(badFormat, []byte("output:\n  format: xml\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		settings string
		env      map[string]string
		want     Config
		wantErr  bool
	}{
		{
			"defaults without a settings file",
			"",
			nil,
			Config{
				Datasets: "datasets",
				Output:   OutputConfig{Precision: 6, Format: FormatTable},
			},
			false,
		},
		{
			"settings file",
			settings,
			nil,
			Config{
				Datasets: "/data/dna",
				Output:   OutputConfig{Precision: 2, Format: FormatJSON},
			},
			false,
		},
		{
			"environment overrides the settings file",
			settings,
			map[string]string{"DNAANALYZER_OUTPUT_PRECISION": "1", "DNAANALYZER_VERBOSE": "true"},
			Config{
				Datasets: "/data/dna",
				Verbose:  true,
				Output:   OutputConfig{Precision: 1, Format: FormatJSON},
			},
			false,
		},
		{
			"missing explicit settings file",
			filepath.Join(dir, "missing.yaml"),
			nil,
			Config{},
			true,
		},
		{
			"malformed settings file",
			broken,
			nil,
			Config{},
			true,
		},
		{
			"unknown output format",
			badFormat,
			nil,
			Config{},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// run from an empty directory so a local settings.yaml isn't picked up
			wd, _ := os.Getwd()
			if err := os.Chdir(t.TempDir()); err != nil {
				t.Fatal(err)
			}
			defer os.Chdir(wd)

			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			v := viper.New()
			if tt.settings != "" {
				v.Set("settings", tt.settings)
			}

			got, err := load(v)
			if (err != nil) != tt.wantErr {
				t.Fatalf("load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && *got != tt.want {
				t.Errorf("load() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestConfig_Percent(t *testing.T) {
	tests := []struct {
		precision int
		p         float64
		want      string
	}{
		{6, 200.0 / 3, "66.666667%"},
		{2, 200.0 / 3, "66.67%"},
		{0, 100, "100%"},
	}
	for _, tt := range tests {
		c := Config{Output: OutputConfig{Precision: tt.precision}}
		if got := c.Percent(tt.p); got != tt.want {
			t.Errorf("Config.Percent(%v) = %q, want %q", tt.p, got, tt.want)
		}
	}
}
