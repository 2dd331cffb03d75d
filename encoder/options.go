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

package encoder

import (
	"log/slog"
)

// DefaultMaxDepth is the default limit on container nesting. It matches the
// nesting limit used when reading CBOR input.
const DefaultMaxDepth = 256

// Config holds configuration for an Encoder
type Config struct {
	// MaxDepth limits how deeply containers may nest. Values <= 0 disable
	// the limit.
	MaxDepth int
	// InitialCapacity is the number of bytes preallocated for the output
	// buffer
	InitialCapacity int
	// SortMapKeys orders map entries by their encoded key bytes. Without
	// it, value maps keep their own order and Go maps use Go's iteration
	// order.
	SortMapKeys bool
	// Logger receives debug messages about failed encodings
	Logger *slog.Logger
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		MaxDepth:        DefaultMaxDepth,
		InitialCapacity: 64,
	}
}

// Option is a functional option for configuring an Encoder
type Option func(*Config)

// WithConfig applies a complete Config, replacing all default values.
// Options applied after WithConfig still override its values.
func WithConfig(config Config) Option {
	return func(c *Config) {
		*c = config
	}
}

// WithMaxDepth sets the nesting limit. Use 0 to disable it.
func WithMaxDepth(depth int) Option {
	return func(c *Config) {
		c.MaxDepth = depth
	}
}

// WithInitialCapacity sets the preallocated buffer size
func WithInitialCapacity(size int) Option {
	return func(c *Config) {
		if size >= 0 {
			c.InitialCapacity = size
		}
	}
}

// WithSortedMapKeys orders map entries by their encoded key bytes, giving Go
// maps a deterministic encoding
func WithSortedMapKeys(sorted bool) Option {
	return func(c *Config) {
		c.SortMapKeys = sorted
	}
}

// WithLogger sets the logger. A nil logger uses slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
