// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/blinklabs-io/compactbin/encoder"
	"gopkg.in/yaml.v3"
)

var (
	inputFormats  = []string{"json", "yaml", "cbor", "cbor-hex"}
	outputFormats = []string{"hex", "raw", "dump", "hash"}
)

// Config holds the settings that can be given in a config file. Command line
// flags override them.
type Config struct {
	InputFormat  string `yaml:"input_format"`
	OutputFormat string `yaml:"output_format"`
	MaxDepth     int    `yaml:"max_depth"`
	SortMapKeys  bool   `yaml:"sort_map_keys"`
	Batch        bool   `yaml:"batch"`
	Workers      int    `yaml:"workers"`
	LogLevel     string `yaml:"log_level"`
}

func defaultConfig() Config {
	return Config{
		InputFormat:  "json",
		OutputFormat: "hex",
		MaxDepth:     encoder.DefaultMaxDepth,
		LogLevel:     "info",
	}
}

// loadConfig reads a YAML config file over the values already in cfg.
// Unknown keys are an error.
func loadConfig(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c Config) validate() error {
	if !slices.Contains(inputFormats, c.InputFormat) {
		return fmt.Errorf(
			"invalid input format %q, must be one of %v",
			c.InputFormat,
			inputFormats,
		)
	}
	if !slices.Contains(outputFormats, c.OutputFormat) {
		return fmt.Errorf(
			"invalid output format %q, must be one of %v",
			c.OutputFormat,
			outputFormats,
		)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("invalid max depth %d", c.MaxDepth)
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid worker count %d", c.Workers)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	return nil
}

func (c Config) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
