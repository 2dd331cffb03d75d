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
	"testing"

	"github.com/blinklabs-io/compactbin/cbor"
	"github.com/blinklabs-io/compactbin/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamDecoderSequence(t *testing.T) {
	// 1, "ab", [1, 2]
	data := test.DecodeHexString("01 626162 820102")
	dec, err := cbor.NewStreamDecoder(data)
	require.NoError(t, err)

	var num uint64
	offset, length, err := dec.Decode(&num)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), num)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 1, length)

	var str string
	offset, length, err = dec.Decode(&str)
	require.NoError(t, err)
	assert.Equal(t, "ab", str)
	assert.Equal(t, 1, offset)
	assert.Equal(t, 3, length)
	assert.Equal(t, 4, dec.Position())
	assert.Equal(t, 3, dec.Remaining())

	header, err := dec.DecodeHeader()
	require.NoError(t, err)
	assert.Equal(t, cbor.CborTypeArray, header.Major)
	assert.Equal(t, uint64(2), header.Arg)
	assert.Equal(t, 5, dec.Position())

	for _, expected := range []uint64{1, 2} {
		var elem uint64
		_, _, err := dec.Decode(&elem)
		require.NoError(t, err)
		assert.Equal(t, expected, elem)
	}
	assert.True(t, dec.EOF())
	assert.False(t, dec.AtBreak())
}

func TestStreamDecoderIndefinite(t *testing.T) {
	dec, err := cbor.NewStreamDecoder(test.DecodeHexString("9f 01 ff"))
	require.NoError(t, err)
	header, err := dec.DecodeHeader()
	require.NoError(t, err)
	assert.True(t, header.Indefinite)
	assert.False(t, dec.AtBreak())
	require.NoError(t, dec.Advance(1))
	assert.True(t, dec.AtBreak())
	require.NoError(t, dec.Advance(1))
	assert.True(t, dec.EOF())
}

func TestStreamDecoderAdvanceBounds(t *testing.T) {
	dec, err := cbor.NewStreamDecoder([]byte{0x01, 0x02})
	require.NoError(t, err)
	require.Error(t, dec.Advance(-1))
	require.Error(t, dec.Advance(3))
	require.NoError(t, dec.Advance(2))
	assert.True(t, dec.EOF())
	_, err = dec.PeekHeader()
	require.ErrorIs(t, err, cbor.ErrUnexpectedEnd)
}
