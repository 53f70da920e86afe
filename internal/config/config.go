// Package config loads the bedgrid settings file.
package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Default report file names. The long-stay name follows long_stay_days, see
// LongStayFileName.
const (
	DefaultLongStayFile     = "internados_mas_5_dias.txt"
	DefaultAboveAverageFile = "mayores_al_promedio.txt"
	DefaultAdjacentFile     = "pacientes_adyacentes.txt"
)

// DefaultLongStayDays is the days-admitted threshold of the long-stay report.
const DefaultLongStayDays = 5

// Config represents the settings file.
type Config struct {
	OutputDir    string `yaml:"output_dir"`
	LongStayDays int    `yaml:"long_stay_days"`
	LogLevel     string `yaml:"log_level"`
	Files        Files  `yaml:"files"`
}

// Files names the report artifacts written inside OutputDir. An empty
// LongStay is derived from the threshold.
type Files struct {
	LongStay     string `yaml:"long_stay,omitempty"`
	AboveAverage string `yaml:"above_average"`
	Adjacent     string `yaml:"adjacent"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		OutputDir:    ".",
		LongStayDays: DefaultLongStayDays,
		LogLevel:     "warn",
		Files: Files{
			AboveAverage: DefaultAboveAverageFile,
			Adjacent:     DefaultAdjacentFile,
		},
	}
}

// Validate checks the settings for values the program cannot use.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.LongStayDays < 0 {
		return fmt.Errorf("long_stay_days must be >= 0, got %d", c.LongStayDays)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if c.Files.AboveAverage == "" || c.Files.Adjacent == "" {
		return fmt.Errorf("report file names must not be empty")
	}
	return nil
}

// LongStayFileName names the long-stay report for a threshold of days.
func LongStayFileName(days int) string {
	return fmt.Sprintf("internados_mas_%d_dias.txt", days)
}

// ReportFiles returns Files with the long-stay name filled in from
// LongStayDays when the settings leave it unset.
func (c *Config) ReportFiles() Files {
	files := c.Files
	if files.LongStay == "" {
		files.LongStay = LongStayFileName(c.LongStayDays)
	}
	return files
}

// LoadFromYAML reads path over the defaults: keys missing from the file keep
// their default value.
func LoadFromYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToYAML writes cfg to path.
func SaveToYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
