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

// Package encoder writes values in the compact binary format.
//
// The format carries no type information. Field names, type names and
// variant names are discarded; only variant discriminants and the lengths of
// strings, blobs, sequences and maps are written. A reader must know the
// schema out-of-band.
//
//	shape                       bytes
//	bool                        00 or 01
//	integer (any width)         varint, signed or unsigned (see package varint)
//	f32, f64                    IEEE 754 bits, big-endian, 4 or 8 bytes
//	char                        UTF-8, no length
//	string, blob                unsigned length, then the bytes
//	option                      00, or 01 followed by the value
//	unit                        nothing
//	sequence, map               unsigned count, then elements or key/value pairs
//	tuple, record               fields in order, no count
//	union case                  unsigned discriminant, then the payload fields
//
// An Encoder exposes one method per shape so that a traversal can drive it
// directly, while Encode and Marshal walk a value.Value or an arbitrary Go
// value respectively.
package encoder

import (
	"encoding/binary"
	"log/slog"
	"math"
	"slices"
	"unicode/utf8"

	"github.com/blinklabs-io/compactbin/value"
	"github.com/blinklabs-io/compactbin/varint"
)

// Encoder appends encoded values to a buffer it owns.
// An Encoder is not safe for concurrent use.
type Encoder struct {
	buf    []byte
	depth  int
	config Config
	logger *slog.Logger
}

// New returns an Encoder with an empty buffer
func New(opts ...Option) *Encoder {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return newWithConfig(config)
}

func newWithConfig(config Config) *Encoder {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Encoder{
		buf:    make([]byte, 0, config.InitialCapacity),
		config: config,
		logger: logger,
	}
}

// Encode encodes v into a new buffer. On failure no partial output is
// returned.
func Encode(v value.Value, opts ...Option) ([]byte, error) {
	e := New(opts...)
	if err := e.Encode(v); err != nil {
		e.discard(err)
		return nil, err
	}
	return e.Bytes(), nil
}

// Marshal encodes an arbitrary Go value into a new buffer. On failure no
// partial output is returned.
func Marshal(v any, opts ...Option) ([]byte, error) {
	e := New(opts...)
	if err := e.Marshal(v); err != nil {
		e.discard(err)
		return nil, err
	}
	return e.Bytes(), nil
}

// discard drops a partially written buffer after a failure
func (e *Encoder) discard(err error) {
	e.logger.Debug(
		"discarding partial encoding",
		"error", err,
		"bytes", len(e.buf),
	)
	e.Reset()
}

// Bytes returns the encoded data. The slice aliases the Encoder's buffer
// until the next write or Reset.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Len returns the number of bytes written so far
func (e *Encoder) Len() int {
	return len(e.buf)
}

// Reset empties the buffer, keeping its capacity
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
	e.depth = 0
}

// nest runs fn one container level deeper, enforcing the depth limit
func (e *Encoder) nest(fn func(*Encoder) error) error {
	if e.config.MaxDepth > 0 && e.depth >= e.config.MaxDepth {
		return ErrNestingTooDeep
	}
	e.depth++
	defer func() {
		e.depth--
	}()
	return fn(e)
}

func (e *Encoder) Bool(v bool) {
	if v {
		e.buf = append(e.buf, 0x01)
	} else {
		e.buf = append(e.buf, 0x00)
	}
}

func (e *Encoder) Int8(v int8)   { e.Int64(int64(v)) }
func (e *Encoder) Int16(v int16) { e.Int64(int64(v)) }
func (e *Encoder) Int32(v int32) { e.Int64(int64(v)) }
func (e *Encoder) Int(v int)     { e.Int64(int64(v)) }

// Int64 writes a signed integer. Every signed width funnels through here.
func (e *Encoder) Int64(v int64) {
	e.buf = varint.AppendInt(e.buf, v)
}

func (e *Encoder) Uint8(v uint8)   { e.Uint64(uint64(v)) }
func (e *Encoder) Uint16(v uint16) { e.Uint64(uint64(v)) }
func (e *Encoder) Uint32(v uint32) { e.Uint64(uint64(v)) }
func (e *Encoder) Uint(v uint)     { e.Uint64(uint64(v)) }

// Uint64 writes an unsigned integer. Every unsigned width, as well as all
// lengths, counts and discriminants, funnels through here.
func (e *Encoder) Uint64(v uint64) {
	e.buf = varint.AppendUint(e.buf, v)
}

// Float32 writes the IEEE 754 bit pattern most-significant byte first
func (e *Encoder) Float32(v float32) {
	e.buf = binary.BigEndian.AppendUint32(e.buf, math.Float32bits(v))
}

// Float64 writes the IEEE 754 bit pattern most-significant byte first
func (e *Encoder) Float64(v float64) {
	e.buf = binary.BigEndian.AppendUint64(e.buf, math.Float64bits(v))
}

// Char writes the UTF-8 encoding of r without a length prefix
func (e *Encoder) Char(r rune) error {
	if !utf8.ValidRune(r) {
		return ErrInvalidChar
	}
	e.buf = utf8.AppendRune(e.buf, r)
	return nil
}

// String writes the byte length of s followed by its bytes
func (e *Encoder) String(s string) {
	e.grow(varint.UintLen(uint64(len(s))) + len(s))
	e.Uint64(uint64(len(s)))
	e.buf = append(e.buf, s...)
}

// Blob writes the length of b followed by its bytes
func (e *Encoder) Blob(b []byte) {
	e.grow(varint.UintLen(uint64(len(b))) + len(b))
	e.Uint64(uint64(len(b)))
	e.buf = append(e.buf, b...)
}

// Raw appends data verbatim. It is meant for Marshaler implementations that
// embed an encoding produced elsewhere.
func (e *Encoder) Raw(data []byte) {
	e.buf = append(e.buf, data...)
}

func (e *Encoder) grow(n int) {
	e.buf = slices.Grow(e.buf, n)
}

// None writes an absent optional
func (e *Encoder) None() {
	e.buf = append(e.buf, 0x00)
}

// Some writes a present optional; fn writes the inner value
func (e *Encoder) Some(fn func(*Encoder) error) error {
	e.buf = append(e.buf, 0x01)
	return e.nest(fn)
}

// Unit writes nothing. It exists so that a traversal has a method for every
// shape.
func (e *Encoder) Unit() {}

// UnitVariant writes a union case without a payload
func (e *Encoder) UnitVariant(index uint32) {
	e.Uint32(index)
}

// NewtypeVariant writes a union case carrying a single value
func (e *Encoder) NewtypeVariant(index uint32, fn func(*Encoder) error) error {
	e.Uint32(index)
	return e.nest(fn)
}

// Seq writes the element count followed by the elements written by fn.
// A negative length means the count is unknown and fails with
// ErrLengthRequired.
func (e *Encoder) Seq(length int, fn func(*Encoder) error) error {
	if length < 0 {
		return ErrLengthRequired
	}
	e.Uint64(uint64(length))
	return e.nest(fn)
}

// Map writes the pair count followed by the keys and values written by fn.
// A negative length means the count is unknown and fails with
// ErrLengthRequired.
func (e *Encoder) Map(length int, fn func(*Encoder) error) error {
	if length < 0 {
		return ErrLengthRequired
	}
	e.Uint64(uint64(length))
	return e.nest(fn)
}

// Tuple writes the elements written by fn with no count
func (e *Encoder) Tuple(fn func(*Encoder) error) error {
	return e.nest(fn)
}

// Struct writes the field values written by fn with no count or names
func (e *Encoder) Struct(fn func(*Encoder) error) error {
	return e.nest(fn)
}

// TupleVariant writes a union case carrying a fixed-arity group
func (e *Encoder) TupleVariant(index uint32, fn func(*Encoder) error) error {
	e.Uint32(index)
	return e.nest(fn)
}

// StructVariant writes a union case carrying a named-field record
func (e *Encoder) StructVariant(index uint32, fn func(*Encoder) error) error {
	e.Uint32(index)
	return e.nest(fn)
}
