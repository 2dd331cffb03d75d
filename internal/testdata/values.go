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

// Package testdata holds CBOR fixtures and their expected compact encodings.
package testdata

import (
	_ "embed"
	"encoding/hex"
	"strings"
)

// Plutus datum holding a list of 64 constructor 0 records, each with an
// integer, a byte string and an optional (constructor 0 or 1) field
//
//go:embed datum_list.hex
var DatumListHex string

// TestValue is a CBOR item with its expected compact encoding. A nil
// Encoded means the item is only used as benchmark input.
type TestValue struct {
	Name    string
	Cbor    []byte
	Encoded []byte
}

// GetTestValues returns the CBOR fixtures
func GetTestValues() []TestValue {
	return []TestValue{
		{
			// 121([h'00', 121([1000000]), []])
			Name:    "Datum",
			Cbor:    MustDecodeHex("d8799f4100d8799f1a000f4240ff80ff"),
			Encoded: MustDecodeHex("00 01 00 00 bd 84 40 00"),
		},
		{
			// {1: "foo", 2: true, 3: null}
			Name:    "Map",
			Cbor:    MustDecodeHex("a30163666f6f02f503f6"),
			Encoded: MustDecodeHex("03 01 03 66 6f 6f 02 01 03 00"),
		},
		{
			// [1, [2, 3], [4, 5]]
			Name:    "NestedArray",
			Cbor:    MustDecodeHex("8301820203820405"),
			Encoded: MustDecodeHex("03 01 02 02 03 02 04 05"),
		},
		{
			// 2(h'ffffffffffffffff')
			Name:    "Bignum",
			Cbor:    MustDecodeHex("c248ffffffffffffffff"),
			Encoded: MustDecodeHex("81 ff ff ff ff ff ff ff ff 7f"),
		},
		{
			Name:    "Float",
			Cbor:    MustDecodeHex("fb400921fb54442d18"),
			Encoded: MustDecodeHex("40 09 21 fb 54 44 2d 18"),
		},
		{
			Name:    "Text",
			Cbor:    MustDecodeHex("6548656c6c6f"),
			Encoded: MustDecodeHex("05 48 65 6c 6c 6f"),
		},
		{
			// -500
			Name:    "NegativeInt",
			Cbor:    MustDecodeHex("3901f3"),
			Encoded: MustDecodeHex("c3 74"),
		},
		{
			Name: "DatumList",
			Cbor: MustDecodeHex(DatumListHex),
		},
	}
}

// MustDecodeHex decodes a hex string to bytes, panicking on error.
// Whitespace is ignored.
func MustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(strings.Join(strings.Fields(s), ""))
	if err != nil {
		panic(err)
	}
	return b
}
