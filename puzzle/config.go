package puzzle

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk run configuration:
//
//	inputs: data
//	answers:
//	  day4:  {part1: "2578", part2: "1972"}
//	  day16: {part1: "102460"}
type Config struct {
	// Inputs is the directory holding dayN.txt files, relative to the
	// config file unless absolute. Default "data".
	Inputs string `yaml:"inputs"`
	// Answers are the known results per day, keyed like the Registry.
	Answers map[string]Answers `yaml:"answers"`

	dir string
}

// DefaultConfig returns a Config reading inputs from ./data with no answers.
func DefaultConfig() Config {
	return Config{Inputs: "data", dir: "."}
}

// LoadConfig reads a YAML config from path. Unknown keys are rejected.
// Answer keys are normalized the same way Registry.Lookup normalizes names.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("puzzle: open config: %w", err)
	}
	defer f.Close()

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	// An empty file decodes to io.EOF and means all defaults.
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("puzzle: decode config %s: %w", path, err)
	}
	if cfg.Inputs == "" {
		cfg.Inputs = "data"
	}
	cfg.dir = filepath.Dir(path)

	answers := make(map[string]Answers, len(cfg.Answers))
	for day, a := range cfg.Answers {
		answers[normalize(day)] = a
	}
	cfg.Answers = answers

	return cfg, nil
}

// InputPath returns where the input for day lives.
func (c Config) InputPath(day string) string {
	dir := c.Inputs
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(c.dir, dir)
	}

	return filepath.Join(dir, normalize(day)+".txt")
}

// Expected returns the configured answers for day.
func (c Config) Expected(day string) Answers {
	return c.Answers[normalize(day)]
}
