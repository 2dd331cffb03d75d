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

// Package compactbin encodes structured values into a compact binary format.
//
// The format is not self-describing: it holds integers as variable-length
// varints, floats as big-endian IEEE bits, strings and blobs with a length
// prefix, and union cases as a discriminant followed by their payload. Field
// and type names are never written, so a reader needs the schema out-of-band.
//
// The packages are layered:
//
//   - varint: the unsigned and sign-magnitude integer codecs
//   - value: the value model, value documents (JSON/YAML) and Dump
//   - encoder: the structural encoder, driven by values or by reflection
//   - cbor: transcoding of CBOR data items into the value model
//   - batch: concurrent encoding of many values
//
// This package re-exports the common entry points.
package compactbin

import (
	"context"

	"github.com/blinklabs-io/compactbin/batch"
	"github.com/blinklabs-io/compactbin/encoder"
	"github.com/blinklabs-io/compactbin/value"
)

// Encode encodes a value. See encoder.Encode.
func Encode(v value.Value, opts ...encoder.Option) ([]byte, error) {
	return encoder.Encode(v, opts...)
}

// Marshal encodes an arbitrary Go value. See encoder.Marshal.
func Marshal(v any, opts ...encoder.Option) ([]byte, error) {
	return encoder.Marshal(v, opts...)
}

// EncodeAll encodes values concurrently, keeping their order. See
// batch.EncodeAll.
func EncodeAll(
	ctx context.Context,
	values []value.Value,
	opts ...batch.Option,
) ([][]byte, error) {
	return batch.EncodeAll(ctx, values, opts...)
}
