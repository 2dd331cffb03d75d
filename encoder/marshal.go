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
	"reflect"

	"github.com/blinklabs-io/compactbin/value"
)

// Marshaler is implemented by types that write their own encoding.
// Errors returned by MarshalCompact are passed to the caller unchanged.
type Marshaler interface {
	MarshalCompact(e *Encoder) error
}

// Union is implemented by types that represent one case of a tagged union.
// UnionCase returns the case discriminant and its payload. A nil payload
// encodes a unit case, a struct payload a record case, a value.Tuple a tuple
// case, and anything else a case carrying a single value.
type Union interface {
	UnionCase() (uint32, any)
}

var (
	valueType     = reflect.TypeFor[value.Value]()
	marshalerType = reflect.TypeFor[Marshaler]()
	unionType     = reflect.TypeFor[Union]()
)

// structTag is the struct tag key consulted by Marshal. A field tagged
// `bin:"-"` is skipped.
const structTag = "bin"

// Marshal appends the encoding of an arbitrary Go value to the buffer.
//
// Pointers are optionals: a nil pointer is absent and any other pointer is
// present. Go has no distinct character type, so a rune encodes as an int32;
// use value.Char for a char.
func (e *Encoder) Marshal(v any) error {
	if v == nil {
		return ErrNilValue
	}
	return e.marshalValue(reflect.ValueOf(v))
}

func (e *Encoder) marshalValue(rv reflect.Value) error {
	if !rv.IsValid() {
		return ErrNilValue
	}
	switch rv.Kind() {
	case reflect.Interface:
		if rv.IsNil() {
			return ErrNilValue
		}
		return e.marshalValue(rv.Elem())
	case reflect.Pointer:
		if rv.IsNil() {
			e.None()
			return nil
		}
		return e.Some(func(e *Encoder) error {
			return e.marshalValue(rv.Elem())
		})
	}
	if handled, err := e.marshalHook(rv); handled {
		return err
	}
	switch rv.Kind() {
	case reflect.Bool:
		e.Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		e.Int64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		e.Uint64(rv.Uint())
	case reflect.Float32:
		e.Float32(float32(rv.Float()))
	case reflect.Float64:
		e.Float64(rv.Float())
	case reflect.String:
		e.String(rv.String())
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			e.Blob(rv.Bytes())
			return nil
		}
		return e.Seq(rv.Len(), func(e *Encoder) error {
			return e.marshalElems(rv)
		})
	case reflect.Array:
		return e.Tuple(func(e *Encoder) error {
			return e.marshalElems(rv)
		})
	case reflect.Map:
		return e.Map(rv.Len(), func(e *Encoder) error {
			if e.config.SortMapKeys {
				return e.marshalSortedMap(rv)
			}
			iter := rv.MapRange()
			for iter.Next() {
				if err := e.marshalValue(iter.Key()); err != nil {
					return err
				}
				if err := e.marshalValue(iter.Value()); err != nil {
					return err
				}
			}
			return nil
		})
	case reflect.Struct:
		return e.Struct(func(e *Encoder) error {
			return e.marshalFields(rv)
		})
	default:
		return &UnsupportedTypeError{Type: rv.Type()}
	}
	return nil
}

// marshalHook dispatches to value.Value, Marshaler and Union implementations,
// in that order. It reports whether rv was handled.
func (e *Encoder) marshalHook(rv reflect.Value) (bool, error) {
	rt := rv.Type()
	if rt.Implements(valueType) {
		return true, e.Encode(rv.Interface().(value.Value))
	}
	ptrType := reflect.PointerTo(rt)
	if !rt.Implements(marshalerType) && !rt.Implements(unionType) &&
		!ptrType.Implements(marshalerType) && !ptrType.Implements(unionType) {
		return false, nil
	}
	// Pointer receivers need an addressable value
	if !rv.CanAddr() {
		tmp := reflect.New(rt).Elem()
		tmp.Set(rv)
		rv = tmp
	}
	target := rv.Addr().Interface()
	if m, ok := target.(Marshaler); ok {
		return true, e.nest(m.MarshalCompact)
	}
	return true, e.marshalUnion(target.(Union))
}

func (e *Encoder) marshalUnion(u Union) error {
	index, payload := u.UnionCase()
	if payload == nil {
		e.UnitVariant(index)
		return nil
	}
	if tuple, ok := payload.(value.Tuple); ok {
		return e.TupleVariant(index, func(e *Encoder) error {
			return e.encodeAll(tuple)
		})
	}
	rv := reflect.ValueOf(payload)
	if rv.Kind() == reflect.Struct && !rv.Type().Implements(valueType) {
		return e.StructVariant(index, func(e *Encoder) error {
			return e.marshalFields(rv)
		})
	}
	return e.NewtypeVariant(index, func(e *Encoder) error {
		return e.marshalValue(rv)
	})
}

func (e *Encoder) marshalElems(rv reflect.Value) error {
	for i := range rv.Len() {
		if err := e.marshalValue(rv.Index(i)); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) marshalFields(rv reflect.Value) error {
	rt := rv.Type()
	for i := range rt.NumField() {
		field := rt.Field(i)
		if !field.IsExported() || field.Tag.Get(structTag) == "-" {
			continue
		}
		if err := e.marshalValue(rv.Field(i)); err != nil {
			return err
		}
	}
	return nil
}

// marshalSortedMap writes map entries ordered by the bytes of their encoded
// keys
func (e *Encoder) marshalSortedMap(rv reflect.Value) error {
	pairs := make([]encodedPair, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		pair, err := e.encodePair(
			func(e *Encoder) error { return e.marshalValue(iter.Key()) },
			func(e *Encoder) error { return e.marshalValue(iter.Value()) },
		)
		if err != nil {
			return err
		}
		pairs = append(pairs, pair)
	}
	e.appendSorted(pairs)
	return nil
}
