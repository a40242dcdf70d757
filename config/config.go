// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package config loads the runner's TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
)

// Config is the root of the configuration file.
type Config struct {
	Inputs Inputs `toml:"inputs"`
	Store  Store  `toml:"store"`
	Run    Run    `toml:"run"`
}

// Inputs controls where puzzle inputs are found and how they are read.
type Inputs struct {
	Dir     string `toml:"dir"`
	AutoEOL bool   `toml:"auto_eol"`
	StripCR bool   `toml:"strip_cr"`
}

// Store names the SQLite database. An empty path disables recording.
type Store struct {
	Path string `toml:"path"`
}

// Run selects the days to run. An empty list runs every registered day.
type Run struct {
	Days   []int  `toml:"days"`
	Target string `toml:"target"` // bag color for day 7
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Inputs: Inputs{Dir: "inputs", AutoEOL: true},
		Run:    Run{Target: "shiny gold"},
	}
}

// Load reads the configuration file at path. Values missing from the
// file keep their defaults. Unknown keys are an error.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		var keys []string
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, fmt.Errorf("config: %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values that can't be checked by decoding alone.
func (c *Config) Validate() error {
	if c.Inputs.Dir == "" {
		return errors.New("inputs.dir is required")
	}
	for _, day := range c.Run.Days {
		if day < 1 || day > 25 {
			return fmt.Errorf("run.days: invalid day %d", day)
		}
	}
	if strings.TrimSpace(c.Run.Target) == "" {
		return errors.New("run.target is required")
	}
	return nil
}
