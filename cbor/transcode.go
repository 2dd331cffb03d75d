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

package cbor

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/blinklabs-io/compactbin/value"
	_cbor "github.com/fxamacker/cbor/v2"
)

// ErrMaxNestedLevels is returned when containers and tags nest deeper than
// MaxNestedLevels
var ErrMaxNestedLevels = fmt.Errorf(
	"exceeded max nested level %d",
	MaxNestedLevels,
)

// ToValue converts a single CBOR data item to a value.Value. Any data after
// the item is an error.
func ToValue(data []byte) (value.Value, error) {
	dec, err := NewStreamDecoder(data)
	if err != nil {
		return nil, err
	}
	t := transcoder{dec: dec}
	ret, err := t.item(0)
	if err != nil {
		return nil, fmt.Errorf(
			"decode CBOR at offset %d: %w",
			dec.Position(),
			err,
		)
	}
	if !dec.EOF() {
		return nil, fmt.Errorf(
			"%d bytes of trailing data after CBOR item",
			dec.Remaining(),
		)
	}
	return ret, nil
}

// ToValues converts a CBOR sequence, zero or more data items written back to
// back, to one value.Value per item
func ToValues(data []byte) ([]value.Value, error) {
	dec, err := NewStreamDecoder(data)
	if err != nil {
		return nil, err
	}
	t := transcoder{dec: dec}
	var ret []value.Value
	for !dec.EOF() {
		v, err := t.item(0)
		if err != nil {
			return nil, fmt.Errorf(
				"decode CBOR item %d at offset %d: %w",
				len(ret),
				dec.Position(),
				err,
			)
		}
		ret = append(ret, v)
	}
	return ret, nil
}

// ToValueHex is ToValue for hex encoded CBOR. Whitespace in the input is
// ignored.
func ToValueHex(hexData string) (value.Value, error) {
	data, err := hex.DecodeString(strings.Join(strings.Fields(hexData), ""))
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return ToValue(data)
}

type transcoder struct {
	dec *StreamDecoder
}

func (t *transcoder) item(depth int) (value.Value, error) {
	header, err := t.dec.PeekHeader()
	if err != nil {
		return nil, err
	}
	switch header.Major {
	case CborTypeUint:
		if err := t.dec.Advance(header.Size); err != nil {
			return nil, err
		}
		return value.Uint64(header.Arg), nil
	case CborTypeNegInt:
		if header.Arg > math.MaxInt64 {
			return nil, fmt.Errorf(
				"negative integer -1-%d does not fit in i64",
				header.Arg,
			)
		}
		if err := t.dec.Advance(header.Size); err != nil {
			return nil, err
		}
		return value.Int64(-1 - int64(header.Arg)), nil
	case CborTypeByteString:
		var tmp []byte
		if _, _, err := t.dec.Decode(&tmp); err != nil {
			return nil, err
		}
		return value.Bytes(tmp), nil
	case CborTypeTextString:
		var tmp string
		if _, _, err := t.dec.Decode(&tmp); err != nil {
			return nil, err
		}
		return value.String(tmp), nil
	case CborTypeArray, CborTypeMap, CborTypeTag:
		if depth >= MaxNestedLevels {
			return nil, ErrMaxNestedLevels
		}
		switch header.Major {
		case CborTypeArray:
			return t.array(depth)
		case CborTypeMap:
			return t.mapItem(depth)
		default:
			return t.tag(header, depth)
		}
	default:
		return t.simple()
	}
}

// elements consumes a container header and calls fn once per element, where
// an element is a single item for arrays and a key/value pair for maps
func (t *transcoder) elements(itemsPer int, fn func() error) error {
	header, err := t.dec.DecodeHeader()
	if err != nil {
		return err
	}
	if header.Indefinite {
		for {
			if t.dec.EOF() {
				return ErrUnexpectedEnd
			}
			if t.dec.AtBreak() {
				return t.dec.Advance(1)
			}
			if err := fn(); err != nil {
				return err
			}
		}
	}
	// Every item takes at least one byte
	if header.Arg > uint64(t.dec.Remaining()/itemsPer) {
		return ErrUnexpectedEnd
	}
	for range header.Arg {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}

func (t *transcoder) array(depth int) (value.Value, error) {
	ret := value.Seq{}
	err := t.elements(1, func() error {
		elem, err := t.item(depth + 1)
		if err != nil {
			return err
		}
		ret = append(ret, elem)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func (t *transcoder) mapItem(depth int) (value.Value, error) {
	ret := value.Map{}
	err := t.elements(2, func() error {
		key, err := t.item(depth + 1)
		if err != nil {
			return err
		}
		val, err := t.item(depth + 1)
		if err != nil {
			return err
		}
		ret = append(ret, value.E(key, val))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func (t *transcoder) tag(header Header, depth int) (value.Value, error) {
	if header.Arg == CborTagPositiveBignum ||
		header.Arg == CborTagNegativeBignum {
		return t.bignum()
	}
	if _, err := t.dec.DecodeHeader(); err != nil {
		return nil, err
	}
	content, err := t.item(depth + 1)
	if err != nil {
		return nil, err
	}
	if constructor, ok := tagToAlternative(header.Arg); ok {
		fields, ok := content.(value.Seq)
		if !ok {
			return nil, fmt.Errorf(
				"alternative tag %d: content must be an array, found %s",
				header.Arg,
				content.Kind(),
			)
		}
		return value.TupleVariant(constructor, fields...), nil
	}
	if header.Arg == CborTagAlternative3 {
		return generalAlternative(content)
	}
	if header.Arg > math.MaxUint32 {
		return nil, fmt.Errorf(
			"tag number %d does not fit in a variant index",
			header.Arg,
		)
	}
	return value.NewtypeVariant(uint32(header.Arg), content), nil
}

// generalAlternative handles tag 101, whose content is the array
// [constructor, [fields...]]
func generalAlternative(content value.Value) (value.Value, error) {
	outer, ok := content.(value.Seq)
	if !ok || len(outer) != 2 {
		return nil, errors.New(
			"alternative tag 101: content must be a 2-element array",
		)
	}
	constructor, ok := outer[0].(value.Uint)
	if !ok || constructor.V > math.MaxUint32 {
		return nil, errors.New(
			"alternative tag 101: constructor must be an unsigned integer that fits in 32 bits",
		)
	}
	fields, ok := outer[1].(value.Seq)
	if !ok {
		return nil, errors.New(
			"alternative tag 101: fields must be an array",
		)
	}
	return value.TupleVariant(uint32(constructor.V), fields...), nil
}

func (t *transcoder) bignum() (value.Value, error) {
	var tmp big.Int
	if _, _, err := t.dec.Decode(&tmp); err != nil {
		return nil, err
	}
	switch {
	case tmp.Sign() >= 0 && tmp.IsUint64():
		return value.Uint64(tmp.Uint64()), nil
	case tmp.Sign() < 0 && tmp.IsInt64():
		return value.Int64(tmp.Int64()), nil
	default:
		return nil, fmt.Errorf("bignum %s does not fit in 64 bits", tmp.String())
	}
}

func (t *transcoder) simple() (value.Value, error) {
	var tmp any
	if _, _, err := t.dec.Decode(&tmp); err != nil {
		return nil, err
	}
	switch v := tmp.(type) {
	case nil:
		return value.None(), nil
	case bool:
		return value.Bool(v), nil
	case float64:
		return value.Float64(v), nil
	case float32:
		return value.Float64(float64(v)), nil
	case _cbor.SimpleValue:
		return value.Uint8(uint8(v)), nil
	default:
		return nil, fmt.Errorf("unsupported CBOR simple value: %T", tmp)
	}
}
