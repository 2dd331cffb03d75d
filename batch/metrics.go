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
	"sync"
	"sync/atomic"
	"time"
)

// Metrics tracks encoding counters across batches.
// Uses atomic counters for thread-safe operation.
type Metrics struct {
	itemsSubmitted atomic.Uint64
	itemsEncoded   atomic.Uint64
	encodeErrors   atomic.Uint64
	bytesEncoded   atomic.Uint64
	encodeNanos    atomic.Int64

	mu           sync.RWMutex
	lastItemTime time.Time
	startTime    time.Time
}

// Stats is a snapshot of Metrics
type Stats struct {
	// ItemsSubmitted is the total number of values handed to the pool
	ItemsSubmitted uint64
	// ItemsEncoded is the total number of values encoded successfully
	ItemsEncoded uint64
	// EncodeErrors is the total number of values that failed to encode
	EncodeErrors uint64
	// BytesEncoded is the total size of all successful encodings
	BytesEncoded uint64
	// EncodeTime is the time spent encoding, summed over all workers
	EncodeTime time.Duration

	// LastItemTime is the time the last value was encoded successfully
	LastItemTime time.Time
	// StartTime is when the metrics were created or last reset
	StartTime time.Time
}

// NewMetrics creates a new Metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		startTime: time.Now(),
	}
}

// RecordSubmit increments the submitted counter.
func (m *Metrics) RecordSubmit() {
	m.itemsSubmitted.Add(1)
}

// RecordEncode records an encode result.
func (m *Metrics) RecordEncode(size int, duration time.Duration, err error) {
	m.encodeNanos.Add(int64(duration))
	if err != nil {
		m.encodeErrors.Add(1)
		return
	}
	m.itemsEncoded.Add(1)
	m.bytesEncoded.Add(uint64(size))
	m.mu.Lock()
	m.lastItemTime = time.Now()
	m.mu.Unlock()
}

// Stats returns a snapshot of the current metrics.
func (m *Metrics) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Stats{
		ItemsSubmitted: m.itemsSubmitted.Load(),
		ItemsEncoded:   m.itemsEncoded.Load(),
		EncodeErrors:   m.encodeErrors.Load(),
		BytesEncoded:   m.bytesEncoded.Load(),
		EncodeTime:     time.Duration(m.encodeNanos.Load()),
		LastItemTime:   m.lastItemTime,
		StartTime:      m.startTime,
	}
}

// Reset resets all metrics.
func (m *Metrics) Reset() {
	m.itemsSubmitted.Store(0)
	m.itemsEncoded.Store(0)
	m.encodeErrors.Store(0)
	m.bytesEncoded.Store(0)
	m.encodeNanos.Store(0)

	m.mu.Lock()
	m.lastItemTime = time.Time{}
	m.startTime = time.Now()
	m.mu.Unlock()
}
