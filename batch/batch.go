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

package batch

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/blinklabs-io/compactbin/encoder"
	"github.com/blinklabs-io/compactbin/value"
)

// EncodeAll encodes every value and returns the encodings in input order.
//
// All values are attempted. If any fail, the error of the lowest failing index
// is returned, wrapped with that index, and no encodings are returned. If ctx
// is done first, ctx.Err() is returned.
func EncodeAll(
	ctx context.Context,
	values []value.Value,
	opts ...Option,
) ([][]byte, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	results := make([][]byte, len(values))
	if len(values) == 0 {
		return results, nil
	}

	ctx, cancel := context.WithCancel(ctx)

	input := make(chan *Item)
	// Buffered so that workers never block on a collector that has given up
	output := make(chan *Item, len(values))
	encoderOpts := append(
		[]encoder.Option{encoder.WithLogger(logger)},
		config.EncoderOptions...,
	)
	pool := NewWorkerPool(WorkerPoolConfig{
		Stage:         NewEncodeStage(encoderOpts...),
		NumWorkers:    min(config.Workers, len(values)),
		Input:         input,
		Output:        output,
		RecordMetrics: EncodeMetricsRecorder(config.Metrics),
	})
	pool.Start(ctx)
	defer func() {
		cancel()
		pool.Stop()
	}()

	go func() {
		defer close(input)
		for i, v := range values {
			if config.Metrics != nil {
				config.Metrics.RecordSubmit()
			}
			select {
			case input <- &Item{Index: i, Value: v}:
			case <-ctx.Done():
				return
			}
		}
	}()

	var failed []*Item
	for range len(values) {
		select {
		case item := <-output:
			if item.Err != nil {
				logger.Debug(
					"failed to encode value",
					"index", item.Index,
					"error", item.Err,
				)
				failed = append(failed, item)
				continue
			}
			results[item.Index] = item.Data
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if len(failed) > 0 {
		first := slices.MinFunc(failed, func(a, b *Item) int {
			return a.Index - b.Index
		})
		return nil, fmt.Errorf("value %d: %w", first.Index, first.Err)
	}
	return results, nil
}
