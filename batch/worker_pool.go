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
	"errors"
	"sync"
	"sync/atomic"
)

// ErrNilStage is returned (as a panic value) when a worker pool is created
// without a stage
var ErrNilStage = errors.New("worker pool requires a stage")

// MetricsRecorder is a function that records metrics for a processed item.
// It receives the item that was processed and the error (if any) from processing.
type MetricsRecorder func(item *Item, err error)

// WorkerPool runs multiple workers in parallel for a given stage.
type WorkerPool struct {
	stage         Stage
	numWorkers    int
	input         <-chan *Item
	output        chan<- *Item
	recordMetrics MetricsRecorder
	wg            sync.WaitGroup
	started       atomic.Bool
}

// WorkerPoolConfig holds configuration for creating a WorkerPool.
type WorkerPoolConfig struct {
	// Stage is the processing stage to use (required, panics if nil).
	Stage Stage
	// NumWorkers is the number of parallel workers; defaults to 1 if <= 0.
	NumWorkers int
	// Input is the channel to receive items from.
	Input <-chan *Item
	// Output is the channel to send processed items to. Items are forwarded
	// even when processing fails, with Err set.
	Output chan<- *Item
	// RecordMetrics is called after processing to record metrics.
	// If nil, no metrics are recorded.
	RecordMetrics MetricsRecorder
}

// NewWorkerPool creates a new worker pool for the given stage.
//
// Note: If input or output channels are nil, workers will block until the
// context passed to Start is done.
func NewWorkerPool(config WorkerPoolConfig) *WorkerPool {
	if config.Stage == nil {
		panic(ErrNilStage)
	}
	numWorkers := config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return &WorkerPool{
		stage:         config.Stage,
		numWorkers:    numWorkers,
		input:         config.Input,
		output:        config.Output,
		recordMetrics: config.RecordMetrics,
	}
}

// Start starts the worker pool. Call Stop to wait for completion.
// This method is idempotent - calling it multiple times has no effect.
func (p *WorkerPool) Start(ctx context.Context) {
	if p.started.Swap(true) {
		return // Already started
	}
	for range p.numWorkers {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

// Stop waits for all workers to complete. Workers finish when the input
// channel is closed or the context is done.
func (p *WorkerPool) Stop() {
	p.wg.Wait()
}

func (p *WorkerPool) worker(ctx context.Context) {
	defer p.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case item, ok := <-p.input:
			if !ok {
				return
			}

			err := p.stage.Process(ctx, item)
			item.Err = err

			// Record metrics only for actual processing attempts (not context cancellation)
			if p.recordMetrics != nil &&
				!errors.Is(err, context.Canceled) &&
				!errors.Is(err, context.DeadlineExceeded) {
				p.recordMetrics(item, err)
			}

			select {
			case p.output <- item:
			case <-ctx.Done():
				return
			}
		}
	}
}

// EncodeMetricsRecorder returns a MetricsRecorder for the encode stage.
func EncodeMetricsRecorder(metrics *Metrics) MetricsRecorder {
	if metrics == nil {
		return nil
	}
	return func(item *Item, err error) {
		metrics.RecordEncode(len(item.Data), item.Duration, err)
	}
}
