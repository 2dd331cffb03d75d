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

package encoder_test

import (
	"testing"

	"github.com/blinklabs-io/compactbin/encoder"
	"github.com/blinklabs-io/compactbin/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// versioned prefixes its default structural encoding with a version byte
type versioned struct {
	Count uint16
	Label string
	Notes string `bin:"-"`
}

func (v *versioned) MarshalCompact(e *encoder.Encoder) error {
	data, err := encoder.MarshalGeneric(v)
	if err != nil {
		return err
	}
	e.Uint8(1)
	e.Raw(data)
	return nil
}

func TestMarshalGeneric(t *testing.T) {
	src := &versioned{Count: 9001, Label: "x", Notes: "dropped"}
	data, err := encoder.MarshalGeneric(src)
	require.NoError(t, err)
	assert.Equal(t, "C6 29 01 78", test.FormatHex(data))

	// The custom method is used by Marshal and may delegate to MarshalGeneric
	data, err = encoder.Marshal(*src)
	require.NoError(t, err)
	assert.Equal(t, "01 C6 29 01 78", test.FormatHex(data))

	// Second call uses the cached clone type
	data, err = encoder.MarshalGeneric(&versioned{Count: 1})
	require.NoError(t, err)
	assert.Equal(t, "01 00", test.FormatHex(data))
}

func TestMarshalGenericInvalidSource(t *testing.T) {
	for _, src := range []any{
		versioned{},
		(*versioned)(nil),
		test.FormatHex,
		nil,
	} {
		data, err := encoder.MarshalGeneric(src)
		require.Error(t, err)
		assert.Nil(t, data)
	}
}
