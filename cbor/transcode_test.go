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

package cbor_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/blinklabs-io/compactbin/cbor"
	"github.com/blinklabs-io/compactbin/encoder"
	"github.com/blinklabs-io/compactbin/internal/test"
	"github.com/blinklabs-io/compactbin/value"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type toValueTestDefinition struct {
	name     string
	cborHex  string
	expected value.Value
}

var toValueTests = []toValueTestDefinition{
	{"uint small", "00", value.Uint64(0)},
	{"uint one byte", "1864", value.Uint64(100)},
	{"uint max", "1bffffffffffffffff", value.Uint64(math.MaxUint64)},
	{"negint", "3903e7", value.Int64(-1000)},
	{"negint min", "3b7fffffffffffffff", value.Int64(math.MinInt64)},
	{"bytes", "4401020304", value.Bytes{1, 2, 3, 4}},
	{"bytes indefinite", "5f42010241 03ff", value.Bytes{1, 2, 3}},
	{"text", "6568656c6c6f", value.String("hello")},
	{"text indefinite", "7f6268656363 6c6c6fff", value.String("hello")},
	{
		"array",
		"83010203",
		value.SeqOf(value.Uint64(1), value.Uint64(2), value.Uint64(3)),
	},
	{"array empty", "80", value.Seq{}},
	{
		"array indefinite",
		"9f0102ff",
		value.SeqOf(value.Uint64(1), value.Uint64(2)),
	},
	{
		"map keeps order",
		"a2616201616100",
		value.Map{
			value.E(value.String("b"), value.Uint64(1)),
			value.E(value.String("a"), value.Uint64(0)),
		},
	},
	{
		"map indefinite",
		"bf6161f5ff",
		value.Map{value.E(value.String("a"), value.Bool(true))},
	},
	{"alternative empty", "d87980", value.TupleVariant(0)},
	{
		"alternative",
		"d87a820102",
		value.TupleVariant(1, value.Uint64(1), value.Uint64(2)),
	},
	{
		"alternative high range",
		"d905008102",
		value.TupleVariant(7, value.Uint64(2)),
	},
	{
		"alternative general",
		"d8658218c88101",
		value.TupleVariant(200, value.Uint64(1)),
	},
	{
		"other tag",
		"c11a514b67b0",
		value.NewtypeVariant(1, value.Uint64(1363896240)),
	},
	{"positive bignum", "c24101", value.Uint64(1)},
	{"negative bignum", "c34100", value.Int64(-1)},
	{"false", "f4", value.Bool(false)},
	{"true", "f5", value.Bool(true)},
	{"null", "f6", value.None()},
	{"undefined", "f7", value.None()},
	{"half float", "f93c00", value.Float64(1.0)},
	{"double", "fb3ff199999999999a", value.Float64(1.1)},
	{"simple", "f0", value.Uint8(16)},
	{
		"nested",
		"a1 63666f6f 82 d87981f6 fb3ff8000000000000",
		value.Map{
			value.E(
				value.String("foo"),
				value.SeqOf(
					value.TupleVariant(0, value.None()),
					value.Float64(1.5),
				),
			),
		},
	},
}

func TestToValue(t *testing.T) {
	for _, testDef := range toValueTests {
		t.Run(testDef.name, func(t *testing.T) {
			v, err := cbor.ToValue(test.DecodeHexString(testDef.cborHex))
			require.NoError(t, err)
			if diff := cmp.Diff(testDef.expected, v); diff != "" {
				t.Fatalf("value mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestToValueHex(t *testing.T) {
	v, err := cbor.ToValueHex("83 01\n02 03")
	require.NoError(t, err)
	assert.Equal(
		t,
		value.SeqOf(value.Uint64(1), value.Uint64(2), value.Uint64(3)),
		v,
	)
	_, err = cbor.ToValueHex("8g")
	require.ErrorContains(t, err, "decode hex")
}

func TestToValueErrors(t *testing.T) {
	tests := []struct {
		name    string
		cborHex string
		message string
	}{
		{"empty", "", "unexpected end of data"},
		{"trailing data", "0000", "1 bytes of trailing data"},
		{"truncated array", "830102", "unexpected end of data"},
		{"truncated argument", "19ff", "unexpected end of data"},
		{"unterminated array", "9f01", "unexpected end of data"},
		{"huge count", "9b00000000ffffffff", "unexpected end of data"},
		{"huge map", "ba0000000100", "unexpected end of data"},
		{"lone break", "ff", "unexpected break"},
		{"reserved info", "1c", "invalid additional info: 28"},
		{"indefinite integer", "1f", "invalid indefinite length"},
		{"negint overflow", "3bffffffffffffffff", "does not fit in i64"},
		{"invalid utf-8", "62c328", "UTF-8"},
		{"bignum overflow", "c249010000000000000000", "does not fit in 64 bits"},
		{"alternative scalar", "d87901", "content must be an array"},
		{"general alternative scalar", "d86501", "2-element array"},
		{
			"general alternative bad constructor",
			"d865826161 80",
			"constructor must be an unsigned integer",
		},
		{"general alternative bad fields", "d865820001", "fields must be an array"},
		{"wide tag", "db000000010000000000", "does not fit in a variant index"},
	}
	for _, testDef := range tests {
		t.Run(testDef.name, func(t *testing.T) {
			v, err := cbor.ToValue(test.DecodeHexString(testDef.cborHex))
			require.ErrorContains(t, err, testDef.message)
			assert.Nil(t, v)
		})
	}
}

func TestToValueNesting(t *testing.T) {
	nested := func(depth int) string {
		return strings.Repeat("81", depth) + "00"
	}
	_, err := cbor.ToValue(test.DecodeHexString(nested(cbor.MaxNestedLevels)))
	require.NoError(t, err)
	_, err = cbor.ToValue(
		test.DecodeHexString(nested(cbor.MaxNestedLevels + 1)),
	)
	require.ErrorIs(t, err, cbor.ErrMaxNestedLevels)
	_, err = cbor.ToValue(
		test.DecodeHexString(strings.Repeat("d818", cbor.MaxNestedLevels+1) + "00"),
	)
	require.ErrorIs(t, err, cbor.ErrMaxNestedLevels)
}

func TestToValueErrorIs(t *testing.T) {
	_, err := cbor.ToValue(test.DecodeHexString("8301"))
	assert.True(t, errors.Is(err, cbor.ErrUnexpectedEnd))
}

func TestToValueThenEncode(t *testing.T) {
	tests := []struct {
		cborHex  string
		expected string
	}{
		{"a2616201616100", "02 01 62 01 01 61 00"},
		{"d87a820102", "01 01 02"},
		{"3903e7", "C7 68"},
		{"82f6c11864", "02 00 01 64"},
		{"fb3ff8000000000000", "3F F8 00 00 00 00 00 00"},
	}
	for _, testDef := range tests {
		v, err := cbor.ToValueHex(testDef.cborHex)
		require.NoError(t, err)
		data, err := encoder.Encode(v)
		require.NoError(t, err)
		assert.Equal(t, testDef.expected, test.FormatHex(data), testDef.cborHex)
	}
}

func TestToValues(t *testing.T) {
	values, err := cbor.ToValues(test.DecodeHexString("01 6161 80"))
	require.NoError(t, err)
	assert.Equal(
		t,
		[]value.Value{value.Uint64(1), value.String("a"), value.Seq{}},
		values,
	)

	values, err = cbor.ToValues(nil)
	require.NoError(t, err)
	assert.Empty(t, values)

	_, err = cbor.ToValues(test.DecodeHexString("01 82"))
	require.ErrorIs(t, err, cbor.ErrUnexpectedEnd)
	assert.ErrorContains(t, err, "item 1")
}
