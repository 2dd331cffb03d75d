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
	"fmt"
	"iter"

	"github.com/blinklabs-io/compactbin/value"
)

// Encode appends v to the buffer. On error the buffer holds a partial
// encoding and should be discarded.
func (e *Encoder) Encode(v value.Value) error {
	switch v := v.(type) {
	case nil:
		return ErrNilValue
	case value.Bool:
		e.Bool(bool(v))
	case value.Int:
		e.Int64(v.V)
	case value.Uint:
		e.Uint64(v.V)
	case value.Float32:
		e.Float32(float32(v))
	case value.Float64:
		e.Float64(float64(v))
	case value.Char:
		return e.Char(rune(v))
	case value.String:
		e.String(string(v))
	case value.Bytes:
		e.Blob(v)
	case value.Option:
		if !v.Present() {
			e.None()
			return nil
		}
		return e.Some(func(e *Encoder) error {
			return e.Encode(v.Inner)
		})
	case value.Unit:
		e.Unit()
	case value.Seq:
		return e.Seq(len(v), func(e *Encoder) error {
			return e.encodeAll(v)
		})
	case value.Stream:
		return e.encodeStream(v)
	case value.Map:
		return e.Map(len(v), func(e *Encoder) error {
			return e.encodeEntries(len(v), entriesOf(v))
		})
	case value.MapStream:
		return e.encodeMapStream(v)
	case value.Tuple:
		return e.Tuple(func(e *Encoder) error {
			return e.encodeAll(v)
		})
	case value.Record:
		return e.Struct(func(e *Encoder) error {
			return e.encodeFields(v)
		})
	case value.Variant:
		return e.encodeVariant(v)
	case value.Func:
		if v == nil {
			return ErrNilValue
		}
		return e.nest(func(e *Encoder) error {
			inner, err := v()
			if err != nil {
				return err
			}
			return e.Encode(inner)
		})
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
	return nil
}

func (e *Encoder) encodeAll(elems []value.Value) error {
	for _, elem := range elems {
		if err := e.Encode(elem); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) encodeFields(fields []value.Field) error {
	for _, field := range fields {
		if err := e.Encode(field.Value); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) encodeEntry(entry value.Entry) error {
	if err := e.Encode(entry.Key); err != nil {
		return err
	}
	return e.Encode(entry.Value)
}

func (e *Encoder) encodeStream(s value.Stream) error {
	return e.Seq(s.Len, func(e *Encoder) error {
		count := 0
		if s.Elems != nil {
			for elem, err := range s.Elems {
				if err != nil {
					return err
				}
				if count == s.Len {
					return ErrLengthMismatch
				}
				if err := e.Encode(elem); err != nil {
					return err
				}
				count++
			}
		}
		if count != s.Len {
			return ErrLengthMismatch
		}
		return nil
	})
}

func (e *Encoder) encodeMapStream(m value.MapStream) error {
	return e.Map(m.Len, func(e *Encoder) error {
		if m.Entries == nil {
			return e.encodeEntries(m.Len, entriesOf(nil))
		}
		return e.encodeEntries(m.Len, m.Entries)
	})
}

// encodeEntries writes exactly length entries, in the order given or, with
// SortMapKeys, ordered by their encoded keys
func (e *Encoder) encodeEntries(
	length int,
	entries iter.Seq2[value.Entry, error],
) error {
	var pairs []encodedPair
	count := 0
	for entry, err := range entries {
		if err != nil {
			return err
		}
		if count == length {
			return ErrLengthMismatch
		}
		count++
		if !e.config.SortMapKeys {
			if err := e.encodeEntry(entry); err != nil {
				return err
			}
			continue
		}
		pair, err := e.encodePair(
			func(e *Encoder) error { return e.Encode(entry.Key) },
			func(e *Encoder) error { return e.Encode(entry.Value) },
		)
		if err != nil {
			return err
		}
		pairs = append(pairs, pair)
	}
	if count != length {
		return ErrLengthMismatch
	}
	e.appendSorted(pairs)
	return nil
}

func entriesOf(m value.Map) iter.Seq2[value.Entry, error] {
	return func(yield func(value.Entry, error) bool) {
		for _, entry := range m {
			if !yield(entry, nil) {
				return
			}
		}
	}
}

func (e *Encoder) encodeVariant(v value.Variant) error {
	switch v.Shape {
	case value.ShapeUnit:
		if len(v.Fields) != 0 {
			return fmt.Errorf(
				"%w: unit variant %d carries %d fields",
				ErrUnsupportedValue,
				v.Index,
				len(v.Fields),
			)
		}
		e.UnitVariant(v.Index)
		return nil
	case value.ShapeNewtype:
		if len(v.Fields) != 1 {
			return fmt.Errorf(
				"%w: newtype variant %d carries %d fields",
				ErrUnsupportedValue,
				v.Index,
				len(v.Fields),
			)
		}
		return e.NewtypeVariant(v.Index, func(e *Encoder) error {
			return e.Encode(v.Fields[0].Value)
		})
	case value.ShapeTuple:
		return e.TupleVariant(v.Index, func(e *Encoder) error {
			return e.encodeFields(v.Fields)
		})
	case value.ShapeRecord:
		return e.StructVariant(v.Index, func(e *Encoder) error {
			return e.encodeFields(v.Fields)
		})
	default:
		return fmt.Errorf(
			"%w: variant %d has shape %s",
			ErrUnsupportedValue,
			v.Index,
			v.Shape,
		)
	}
}
