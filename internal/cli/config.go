// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-secretshare.
//
// go-secretshare is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config holds global CLI configuration
type Config struct {
	// ConfigFile is the path to the configuration file
	ConfigFile string

	// OutputFormat controls output formatting (text, json)
	OutputFormat string

	// Verbose enables verbose logging
	Verbose bool

	// Threshold is the default minimum number of shares for split
	Threshold int

	// Shares is the default total number of shares for split
	Shares int

	// OutDir is the default directory share files are written to
	OutDir string
}

// fileConfig is the YAML layout of the optional configuration file.
type fileConfig struct {
	Output    string `yaml:"output"`
	Verbose   bool   `yaml:"verbose"`
	Threshold int    `yaml:"threshold"`
	Shares    int    `yaml:"shares"`
	OutDir    string `yaml:"out_dir"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		OutputFormat: "text",
		Verbose:      false,
		Threshold:    3,
		Shares:       5,
		OutDir:       ".",
	}
}

// LoadFile merges settings from the configuration file, if one exists.
// An explicitly requested file must exist; the default location is
// optional. Flags set on the given flag set win over file settings.
func (c *Config) LoadFile(flags *pflag.FlagSet) error {
	path := c.ConfigFile
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil // no home directory, nothing to load
		}
		path = filepath.Join(home, ".secretshare.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if explicit {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		return nil
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	c.apply(flags, &fc)
	return nil
}

// apply copies file settings into the config, skipping anything already
// set on the command line.
func (c *Config) apply(flags *pflag.FlagSet, fc *fileConfig) {
	if fc.Output != "" && !flags.Changed("output") {
		c.OutputFormat = fc.Output
	}
	if fc.Verbose && !flags.Changed("verbose") {
		c.Verbose = true
	}
	if fc.Threshold > 0 {
		c.Threshold = fc.Threshold
	}
	if fc.Shares > 0 {
		c.Shares = fc.Shares
	}
	if fc.OutDir != "" {
		c.OutDir = fc.OutDir
	}
}
