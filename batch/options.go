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
	"log/slog"
	"runtime"

	"github.com/blinklabs-io/compactbin/encoder"
)

// Config holds configuration for EncodeAll
type Config struct {
	// Workers is the number of parallel encoders
	Workers int
	// EncoderOptions are passed to every encoder
	EncoderOptions []encoder.Option
	// Metrics receives counters for every item, if set
	Metrics *Metrics
	// Logger receives debug messages about failed items
	Logger *slog.Logger
}

// DefaultConfig returns a Config with one worker per CPU
func DefaultConfig() Config {
	return Config{
		Workers: runtime.NumCPU(),
	}
}

// Option is a functional option for configuring EncodeAll
type Option func(*Config)

// WithConfig applies a complete Config, replacing all default values.
// Options applied after WithConfig still override its values.
func WithConfig(config Config) Option {
	return func(c *Config) {
		*c = config
	}
}

// WithWorkers sets the number of parallel encoders
func WithWorkers(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.Workers = n
		}
	}
}

// WithEncoderOptions appends options passed to every encoder
func WithEncoderOptions(opts ...encoder.Option) Option {
	return func(c *Config) {
		c.EncoderOptions = append(c.EncoderOptions, opts...)
	}
}

// WithMetrics sets the metrics to update
func WithMetrics(metrics *Metrics) Option {
	return func(c *Config) {
		c.Metrics = metrics
	}
}

// WithLogger sets the logger. A nil logger uses slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
