package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Barritosaurus/schedsim/internal/process"
	"github.com/Barritosaurus/schedsim/internal/report"
	"github.com/Barritosaurus/schedsim/internal/scheduler"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings of one simulation run.
type Config struct {
	Policies     []string `yaml:"policies"`      // Policies to run, in order (default fcfs, sjf)
	InputFormat  string   `yaml:"input_format"`  // text, csv, json, yaml; empty infers from the file name
	Output       string   `yaml:"output"`        // plain or table
	MaxProcesses int      `yaml:"max_processes"` // 0 means unbounded
	Strict       bool     `yaml:"strict"`        // fail on bad input instead of scheduling nothing
	LogLevel     string   `yaml:"log_level"`     // debug, info, warn, error
	LogFormat    string   `yaml:"log_format"`    // text, json
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Policies:  scheduler.Names(),
		Output:    report.FormatPlain,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads YAML from r on top of the defaults. Unknown keys are an
// error. An empty document leaves the defaults untouched.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Validate checks that every named policy, format and limit is usable.
func (c Config) Validate() error {
	if len(c.Policies) == 0 {
		return fmt.Errorf("%w: no policies selected", ErrInvalidConfig)
	}
	for _, p := range c.Policies {
		if _, err := scheduler.Lookup(p); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	if _, err := process.ParseFormat(c.InputFormat); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := report.Writer(c.Output); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.MaxProcesses < 0 {
		return fmt.Errorf("%w: max_processes must not be negative, got %d", ErrInvalidConfig, c.MaxProcesses)
	}

	return nil
}
