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

// Package value provides a closed set of types describing the structural
// shape of a value to be encoded.
//
// Every type in this package implements Value, and no type outside it can.
// Encoders switch over the concrete types, so every shape has exactly one
// encoding rule.
package value

import (
	"iter"
)

// Kind identifies the structural shape of a Value
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat32
	KindFloat64
	KindChar
	KindString
	KindBytes
	KindOption
	KindUnit
	KindSeq
	KindStream
	KindMap
	KindMapStream
	KindTuple
	KindRecord
	KindVariant
	KindFunc
)

var kindNames = map[Kind]string{
	KindInvalid:   "invalid",
	KindBool:      "bool",
	KindInt:       "int",
	KindUint:      "uint",
	KindFloat32:   "f32",
	KindFloat64:   "f64",
	KindChar:      "char",
	KindString:    "str",
	KindBytes:     "bytes",
	KindOption:    "option",
	KindUnit:      "unit",
	KindSeq:       "seq",
	KindStream:    "stream",
	KindMap:       "map",
	KindMapStream: "map-stream",
	KindTuple:     "tuple",
	KindRecord:    "record",
	KindVariant:   "variant",
	KindFunc:      "func",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Value is implemented by every shape in this package
type Value interface {
	Kind() Kind
	isValue()
}

// Width is the declared bit width of an integer. It only affects how a value
// is displayed; all widths share one wire encoding.
type Width uint8

const (
	W8  Width = 8
	W16 Width = 16
	W32 Width = 32
	W64 Width = 64
)

// UnknownLen marks a Stream or MapStream whose length is not known ahead of
// encoding
const UnknownLen = -1

type Bool bool

type Int struct {
	Width Width
	V     int64
}

type Uint struct {
	Width Width
	V     uint64
}

type Float32 float32

type Float64 float64

// Char is a single Unicode scalar value
type Char rune

type String string

type Bytes []byte

// Option is an optional value. A nil Inner means absent.
type Option struct {
	Inner Value
}

// Unit is the empty value. It also stands in for unit structs.
type Unit struct{}

// Seq is a sequence whose length is known
type Seq []Value

// Stream is a sequence produced on demand. Len is the declared element count,
// or UnknownLen.
type Stream struct {
	Len   int
	Elems iter.Seq2[Value, error]
}

type Entry struct {
	Key   Value
	Value Value
}

// Map is a keyed mapping. Entries are encoded in slice order.
type Map []Entry

// MapStream is a keyed mapping produced on demand. Len is the declared pair
// count, or UnknownLen.
type MapStream struct {
	Len     int
	Entries iter.Seq2[Entry, error]
}

// Tuple is a fixed-arity ordered group
type Tuple []Value

type Field struct {
	Name  string
	Value Value
}

// Record is a named-field record. Names are informational only.
type Record []Field

// Shape is the payload form of a Variant
type Shape uint8

const (
	ShapeUnit Shape = iota
	ShapeNewtype
	ShapeTuple
	ShapeRecord
)

func (s Shape) String() string {
	switch s {
	case ShapeUnit:
		return "unit"
	case ShapeNewtype:
		return "newtype"
	case ShapeTuple:
		return "tuple"
	case ShapeRecord:
		return "record"
	default:
		return "unknown"
	}
}

// Variant is one case of a tagged union. Fields holds the payload: empty for
// ShapeUnit, exactly one entry for ShapeNewtype and any number otherwise.
type Variant struct {
	Index  uint32
	Shape  Shape
	Fields []Field
}

// Func produces a value when it is encoded. An error it returns is passed
// through to the caller unchanged.
type Func func() (Value, error)

func (Bool) Kind() Kind      { return KindBool }
func (Int) Kind() Kind       { return KindInt }
func (Uint) Kind() Kind      { return KindUint }
func (Float32) Kind() Kind   { return KindFloat32 }
func (Float64) Kind() Kind   { return KindFloat64 }
func (Char) Kind() Kind      { return KindChar }
func (String) Kind() Kind    { return KindString }
func (Bytes) Kind() Kind     { return KindBytes }
func (Option) Kind() Kind    { return KindOption }
func (Unit) Kind() Kind      { return KindUnit }
func (Seq) Kind() Kind       { return KindSeq }
func (Stream) Kind() Kind    { return KindStream }
func (Map) Kind() Kind       { return KindMap }
func (MapStream) Kind() Kind { return KindMapStream }
func (Tuple) Kind() Kind     { return KindTuple }
func (Record) Kind() Kind    { return KindRecord }
func (Variant) Kind() Kind   { return KindVariant }
func (Func) Kind() Kind      { return KindFunc }

func (Bool) isValue()      {}
func (Int) isValue()       {}
func (Uint) isValue()      {}
func (Float32) isValue()   {}
func (Float64) isValue()   {}
func (Char) isValue()      {}
func (String) isValue()    {}
func (Bytes) isValue()     {}
func (Option) isValue()    {}
func (Unit) isValue()      {}
func (Seq) isValue()       {}
func (Stream) isValue()    {}
func (Map) isValue()       {}
func (MapStream) isValue() {}
func (Tuple) isValue()     {}
func (Record) isValue()    {}
func (Variant) isValue()   {}
func (Func) isValue()      {}

func Int8(v int8) Int      { return Int{Width: W8, V: int64(v)} }
func Int16(v int16) Int    { return Int{Width: W16, V: int64(v)} }
func Int32(v int32) Int    { return Int{Width: W32, V: int64(v)} }
func Int64(v int64) Int    { return Int{Width: W64, V: v} }
func Uint8(v uint8) Uint   { return Uint{Width: W8, V: uint64(v)} }
func Uint16(v uint16) Uint { return Uint{Width: W16, V: uint64(v)} }
func Uint32(v uint32) Uint { return Uint{Width: W32, V: uint64(v)} }
func Uint64(v uint64) Uint { return Uint{Width: W64, V: v} }

// None returns an absent Option
func None() Option {
	return Option{}
}

// Some returns a present Option holding v
func Some(v Value) Option {
	return Option{Inner: v}
}

// Present reports whether the Option holds a value
func (o Option) Present() bool {
	return o.Inner != nil
}

// SeqOf builds a Seq from its elements
func SeqOf(elems ...Value) Seq {
	return Seq(elems)
}

// TupleOf builds a Tuple from its elements
func TupleOf(elems ...Value) Tuple {
	return Tuple(elems)
}

// RecordOf builds a Record from its fields
func RecordOf(fields ...Field) Record {
	return Record(fields)
}

// F is shorthand for a Field
func F(name string, v Value) Field {
	return Field{Name: name, Value: v}
}

// E is shorthand for a map Entry
func E(key, v Value) Entry {
	return Entry{Key: key, Value: v}
}

// StreamOf wraps a slice as a Stream with a declared length
func StreamOf(length int, elems ...Value) Stream {
	return Stream{
		Len: length,
		Elems: func(yield func(Value, error) bool) {
			for _, elem := range elems {
				if !yield(elem, nil) {
					return
				}
			}
		},
	}
}

// MapStreamOf wraps a slice of entries as a MapStream with a declared length
func MapStreamOf(length int, entries ...Entry) MapStream {
	return MapStream{
		Len: length,
		Entries: func(yield func(Entry, error) bool) {
			for _, entry := range entries {
				if !yield(entry, nil) {
					return
				}
			}
		},
	}
}

// UnitVariant is a union case without a payload
func UnitVariant(index uint32) Variant {
	return Variant{Index: index, Shape: ShapeUnit}
}

// NewtypeVariant is a union case carrying exactly one value
func NewtypeVariant(index uint32, v Value) Variant {
	return Variant{
		Index:  index,
		Shape:  ShapeNewtype,
		Fields: []Field{{Value: v}},
	}
}

// TupleVariant is a union case carrying a fixed-arity ordered group
func TupleVariant(index uint32, elems ...Value) Variant {
	fields := make([]Field, 0, len(elems))
	for _, elem := range elems {
		fields = append(fields, Field{Value: elem})
	}
	return Variant{
		Index:  index,
		Shape:  ShapeTuple,
		Fields: fields,
	}
}

// RecordVariant is a union case carrying a named-field record
func RecordVariant(index uint32, fields ...Field) Variant {
	return Variant{
		Index:  index,
		Shape:  ShapeRecord,
		Fields: fields,
	}
}
