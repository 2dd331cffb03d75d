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

// Package batch encodes many values concurrently. Each value is encoded by its
// own encoder into its own buffer, so the only shared state is the metrics.
package batch

import (
	"context"
	"time"

	"github.com/blinklabs-io/compactbin/encoder"
	"github.com/blinklabs-io/compactbin/value"
)

// Item carries one value through the worker pool
type Item struct {
	// Index is the position of the value in the batch
	Index int
	// Value is the value to encode
	Value value.Value
	// Data holds the encoding once the item is processed
	Data []byte
	// Err holds the processing error, if any
	Err error
	// Duration is the time spent encoding
	Duration time.Duration
}

// Stage represents a processing step applied to each item
type Stage interface {
	// Name returns the name of the stage for logging and metrics.
	Name() string
	// Process processes a single item. Returns an error if processing fails.
	Process(ctx context.Context, item *Item) error
}

// StageFunc is an adapter that allows using ordinary functions as Stage implementations.
type StageFunc struct {
	name string
	fn   func(ctx context.Context, item *Item) error
}

// NewStageFunc creates a new StageFunc with the given name and processing function.
func NewStageFunc(name string, fn func(ctx context.Context, item *Item) error) *StageFunc {
	return &StageFunc{
		name: name,
		fn:   fn,
	}
}

// Name returns the name of the stage.
func (s *StageFunc) Name() string {
	return s.name
}

// Process calls the underlying function.
func (s *StageFunc) Process(ctx context.Context, item *Item) error {
	return s.fn(ctx, item)
}

// EncodeStage encodes an item's value with a fresh encoder
type EncodeStage struct {
	opts []encoder.Option
}

// NewEncodeStage returns an EncodeStage that passes opts to every encoder
func NewEncodeStage(opts ...encoder.Option) *EncodeStage {
	return &EncodeStage{opts: opts}
}

func (s *EncodeStage) Name() string {
	return "encode"
}

func (s *EncodeStage) Process(ctx context.Context, item *Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	data, err := encoder.Encode(item.Value, s.opts...)
	item.Duration = time.Since(start)
	if err != nil {
		return err
	}
	item.Data = data
	return nil
}
