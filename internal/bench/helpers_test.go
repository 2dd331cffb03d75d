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

package bench

import (
	"testing"

	"github.com/blinklabs-io/compactbin"
	"github.com/blinklabs-io/compactbin/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFixture(t *testing.T) {
	for _, name := range FixtureNames() {
		t.Run(name, func(t *testing.T) {
			fixture, err := LoadFixture(name)
			require.NoError(t, err)
			require.NotNil(t, fixture)
			assert.Equal(t, name, fixture.Name)
			assert.NotEmpty(t, fixture.Cbor)
			assert.NotNil(t, fixture.Value)
		})
	}
}

func TestLoadFixtureCaseInsensitive(t *testing.T) {
	fixture, err := LoadFixture("datumlist")
	require.NoError(t, err)
	assert.Equal(t, "DatumList", fixture.Name)
}

func TestLoadFixture_Unknown(t *testing.T) {
	_, err := LoadFixture("unknown")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown fixture")
}

func TestLargeRecord(t *testing.T) {
	v := LargeRecord(16)
	record, ok := v.(value.Record)
	require.True(t, ok)
	assert.Len(t, record, 6)
	data, err := compactbin.Encode(v)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestNewAccount(t *testing.T) {
	account := NewAccount(42)
	require.NotNil(t, account.Parent)
	assert.Equal(t, uint32(21), *account.Parent)
	data, err := compactbin.Marshal(account)
	require.NoError(t, err)
	// id, then the name length and first byte
	assert.Equal(t, []byte{0x2a, 0x0a, 'a'}, data[:3])
}
