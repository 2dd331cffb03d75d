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
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/blinklabs-io/compactbin"
	"github.com/blinklabs-io/compactbin/batch"
	"github.com/blinklabs-io/compactbin/cbor"
	"github.com/blinklabs-io/compactbin/encoder"
	"github.com/blinklabs-io/compactbin/value"
)

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func parseValue(format string, data []byte) (value.Value, error) {
	switch format {
	case "json":
		return value.ParseJSON(data)
	case "yaml":
		return value.ParseYAML(data)
	case "cbor":
		return cbor.ToValue(data)
	case "cbor-hex":
		return cbor.ToValueHex(string(data))
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}

func parseValues(format string, data []byte) ([]value.Value, error) {
	switch format {
	case "json":
		return value.ParseJSONList(data)
	case "yaml":
		return value.ParseYAMLStream(data)
	case "cbor":
		return cbor.ToValues(data)
	case "cbor-hex":
		raw, err := hex.DecodeString(
			strings.Join(strings.Fields(string(data)), ""),
		)
		if err != nil {
			return nil, fmt.Errorf("decode hex: %w", err)
		}
		return cbor.ToValues(raw)
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}

func encodeInput(
	ctx context.Context,
	cfg Config,
	logger *slog.Logger,
	data []byte,
	out io.Writer,
) error {
	encoderOpts := []encoder.Option{
		encoder.WithMaxDepth(cfg.MaxDepth),
		encoder.WithSortedMapKeys(cfg.SortMapKeys),
		encoder.WithLogger(logger),
	}
	if !cfg.Batch {
		v, err := parseValue(cfg.InputFormat, data)
		if err != nil {
			return err
		}
		encoded, err := compactbin.Encode(v, encoderOpts...)
		if err != nil {
			return err
		}
		logger.Debug("encoded value", "bytes", len(encoded))
		return writeOutput(out, cfg.OutputFormat, v, encoded)
	}
	values, err := parseValues(cfg.InputFormat, data)
	if err != nil {
		return err
	}
	metrics := batch.NewMetrics()
	batchOpts := []batch.Option{
		batch.WithEncoderOptions(encoderOpts...),
		batch.WithMetrics(metrics),
		batch.WithLogger(logger),
	}
	if cfg.Workers > 0 {
		batchOpts = append(batchOpts, batch.WithWorkers(cfg.Workers))
	}
	results, err := compactbin.EncodeAll(ctx, values, batchOpts...)
	if err != nil {
		return err
	}
	stats := metrics.Stats()
	logger.Debug(
		"encoded batch",
		"values", stats.ItemsEncoded,
		"bytes", stats.BytesEncoded,
		"encode_time", stats.EncodeTime,
	)
	for i, encoded := range results {
		if err := writeOutput(out, cfg.OutputFormat, values[i], encoded); err != nil {
			return err
		}
	}
	return nil
}

func writeOutput(
	out io.Writer,
	format string,
	v value.Value,
	encoded []byte,
) error {
	var err error
	switch format {
	case "hex":
		_, err = fmt.Fprintln(out, hex.EncodeToString(encoded))
	case "raw":
		_, err = out.Write(encoded)
	case "dump":
		_, err = fmt.Fprintf(
			out,
			"%sencoded: %s (length %d)\n",
			value.Dump(v, ""),
			hex.EncodeToString(encoded),
			len(encoded),
		)
	case "hash":
		_, err = fmt.Fprintln(out, compactbin.Blake2b256Hash(encoded))
	default:
		err = fmt.Errorf("unknown output format %q", format)
	}
	return err
}
