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

// Command compactbin reads a value from a document or CBOR and writes its
// compact binary encoding.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/blinklabs-io/compactbin/encoder"
	"github.com/spf13/pflag"
)

type globalFlags struct {
	flagset      *pflag.FlagSet
	input        string
	inputFormat  string
	outputFormat string
	configFile   string
	maxDepth     int
	sortMapKeys  bool
	batch        bool
	workers      int
	debug        bool
}

func newGlobalFlags(name string) *globalFlags {
	f := &globalFlags{
		flagset: pflag.NewFlagSet(name, pflag.ContinueOnError),
	}
	f.flagset.StringVarP(
		&f.input,
		"input",
		"i",
		"-",
		"input file, or - for stdin",
	)
	f.flagset.StringVarP(
		&f.inputFormat,
		"input-format",
		"f",
		"json",
		"input format: json, yaml, cbor or cbor-hex",
	)
	f.flagset.StringVarP(
		&f.outputFormat,
		"output-format",
		"o",
		"hex",
		"output format: hex, raw, dump or hash",
	)
	f.flagset.StringVarP(
		&f.configFile,
		"config",
		"c",
		"",
		"YAML config file",
	)
	f.flagset.IntVar(
		&f.maxDepth,
		"max-depth",
		encoder.DefaultMaxDepth,
		"maximum container nesting, 0 for no limit",
	)
	f.flagset.BoolVar(
		&f.sortMapKeys,
		"sort-map-keys",
		false,
		"order map entries by their encoded keys",
	)
	f.flagset.BoolVarP(
		&f.batch,
		"batch",
		"b",
		false,
		"encode every document in the input: a YAML stream, a JSON list or a CBOR sequence",
	)
	f.flagset.IntVar(
		&f.workers,
		"workers",
		0,
		"parallel encoders in batch mode, 0 for one per CPU",
	)
	f.flagset.BoolVar(&f.debug, "debug", false, "enable debug logging")
	return f
}

// config builds the effective configuration: defaults, then the config
// file, then any flags given explicitly
func (f *globalFlags) config() (Config, error) {
	cfg := defaultConfig()
	if f.configFile != "" {
		if err := loadConfig(f.configFile, &cfg); err != nil {
			return Config{}, err
		}
	}
	changed := f.flagset.Changed
	if changed("input-format") {
		cfg.InputFormat = f.inputFormat
	}
	if changed("output-format") {
		cfg.OutputFormat = f.outputFormat
	}
	if changed("max-depth") {
		cfg.MaxDepth = f.maxDepth
	}
	if changed("sort-map-keys") {
		cfg.SortMapKeys = f.sortMapKeys
	}
	if changed("batch") {
		cfg.Batch = f.batch
	}
	if changed("workers") {
		cfg.Workers = f.workers
	}
	if f.debug {
		cfg.LogLevel = "debug"
	}
	return cfg, cfg.validate()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command and returns the process exit status
func run(
	ctx context.Context,
	args []string,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
) int {
	f := newGlobalFlags(args[0])
	f.flagset.SetOutput(stderr)
	if err := f.flagset.Parse(args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "failed to parse command args: %s\n", err)
		return 1
	}
	if f.flagset.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", f.flagset.Args())
		return 1
	}
	cfg, err := f.config()
	if err != nil {
		fmt.Fprintf(stderr, "invalid configuration: %s\n", err)
		return 1
	}
	level, _ := cfg.level()
	logger := slog.New(
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}),
	)
	data, err := readInput(f.input, stdin)
	if err != nil {
		logger.Error("failed to read input", "input", f.input, "error", err)
		return 1
	}
	logger.Debug(
		"read input",
		"input", f.input,
		"format", cfg.InputFormat,
		"bytes", len(data),
	)
	if err := encodeInput(ctx, cfg, logger, data, stdout); err != nil {
		logger.Error("failed to encode input", "error", err)
		return 1
	}
	return 0
}
