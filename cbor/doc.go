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

// Package cbor reads CBOR data items into the value model so they can be
// re-encoded in the compact format.
//
// CBOR carries enough self-description to pick a shape for every item:
//
//   - unsigned and negative integers become u64 and i64
//   - byte strings become blobs and text strings become strings
//   - arrays, definite or indefinite, become sequences
//   - maps become maps, keeping the order of the input
//   - enumerated alternative tags (121-127, 1280-1400 and 101) become tuple
//     variants indexed by constructor number
//   - bignum tags (2 and 3) become u64 or i64 when they fit
//   - any other tag becomes a newtype variant indexed by the tag number
//   - true and false become bools, null and undefined become absent options
//   - floats of any width become f64, and other simple values become u8
//
// Decoding uses github.com/fxamacker/cbor/v2 for scalars and walks container
// headers directly so that map order survives.
package cbor
