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

package compactbin_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/blinklabs-io/compactbin"
	"github.com/blinklabs-io/compactbin/encoder"
	"github.com/blinklabs-io/compactbin/internal/test"
	"github.com/blinklabs-io/compactbin/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func ExampleEncode() {
	v := value.RecordOf(
		value.F("id", value.Uint16(9001)),
		value.F("name", value.String("Hi")),
		value.F("parent", value.None()),
	)
	data, err := compactbin.Encode(v)
	if err != nil {
		panic(err)
	}
	fmt.Println(test.FormatHex(data))
	// Output: C6 29 02 48 69 00
}

type point struct {
	X int16
	Y int16
}

func ExampleMarshal() {
	data, err := compactbin.Marshal([]point{{X: -42, Y: 4000}})
	if err != nil {
		panic(err)
	}
	fmt.Println(test.FormatHex(data))
	// Output: 01 6A 9F 20
}

func TestEncodeAll(t *testing.T) {
	defer goleak.VerifyNone(t)

	results, err := compactbin.EncodeAll(
		context.Background(),
		[]value.Value{value.Bool(true), value.Some(value.Uint8(42))},
	)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{{0x01}, {0x01, 0x2a}}, results)
}

func TestEncodeOptions(t *testing.T) {
	_, err := compactbin.Encode(
		value.SeqOf(value.SeqOf()),
		encoder.WithMaxDepth(1),
	)
	require.ErrorIs(t, err, encoder.ErrNestingTooDeep)
}

func TestBlake2b256Hash(t *testing.T) {
	// Unit encodes to nothing
	data, err := compactbin.Encode(value.Unit{})
	require.NoError(t, err)
	assert.Equal(
		t,
		"0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8",
		compactbin.Blake2b256Hash(data).String(),
	)

	first := compactbin.Blake2b256Hash([]byte{0x01})
	second := compactbin.Blake2b256Hash([]byte{0x01})
	assert.Equal(t, first, second)
	assert.Len(t, first.Bytes(), compactbin.Blake2b256Size)
	assert.NotEqual(t, first, compactbin.Blake2b256Hash([]byte{0x00}))
}
