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

// Package bench provides benchmark fixtures and allocation checks for the
// encoder.
package bench

import (
	"fmt"
	"strings"

	"github.com/blinklabs-io/compactbin/cbor"
	"github.com/blinklabs-io/compactbin/internal/testdata"
	"github.com/blinklabs-io/compactbin/value"
)

// Fixture is a value prepared for benchmarking along with the CBOR it was
// transcoded from, if any
type Fixture struct {
	Name  string
	Cbor  []byte
	Value value.Value
}

// LoadFixture loads a CBOR fixture from testdata by name. Names are matched
// case-insensitively.
func LoadFixture(name string) (*Fixture, error) {
	for _, tv := range testdata.GetTestValues() {
		if !strings.EqualFold(tv.Name, name) {
			continue
		}
		v, err := cbor.ToValue(tv.Cbor)
		if err != nil {
			return nil, fmt.Errorf("transcode %s fixture: %w", tv.Name, err)
		}
		return &Fixture{
			Name:  tv.Name,
			Cbor:  tv.Cbor,
			Value: v,
		}, nil
	}
	return nil, fmt.Errorf("unknown fixture: %s", name)
}

// MustLoadFixture loads a fixture and panics on error.
// Use this in benchmark setup code.
func MustLoadFixture(name string) *Fixture {
	fixture, err := LoadFixture(name)
	if err != nil {
		panic(fmt.Sprintf("failed to load %s fixture: %v", name, err))
	}
	return fixture
}

// FixtureNames returns the names of all CBOR fixtures
func FixtureNames() []string {
	values := testdata.GetTestValues()
	ret := make([]string, 0, len(values))
	for _, tv := range values {
		ret = append(ret, tv.Name)
	}
	return ret
}

// Account is a Go type used by the reflection benchmarks
type Account struct {
	Id      uint64
	Name    string
	Balance int64
	Tags    []string
	Parent  *uint32
	Meta    map[string]uint16
	Flags   [4]bool
	Scratch []byte `bin:"-"`
}

// NewAccount returns a populated Account
func NewAccount(id uint64) Account {
	parent := uint32(id / 2)
	return Account{
		Id:      id,
		Name:    fmt.Sprintf("account-%d", id),
		Balance: -int64(id) * 1_000_000,
		Tags:    []string{"stake", "reward", "pool"},
		Parent:  &parent,
		Meta:    map[string]uint16{"epoch": 512},
		Flags:   [4]bool{true, false, true, false},
	}
}

// LargeRecord returns a record value with n entries in each of its
// containers
func LargeRecord(n int) value.Value {
	seq := make(value.Seq, 0, n)
	entries := make(value.Map, 0, n)
	for i := range n {
		seq = append(seq, value.Int64(int64(i)*-37))
		entries = append(
			entries,
			value.E(
				value.String(fmt.Sprintf("key-%04d", i)),
				value.Some(value.Float64(float64(i)/3)),
			),
		)
	}
	return value.RecordOf(
		value.F("id", value.Uint32(uint32(n))),
		value.F("label", value.String(strings.Repeat("x", n))),
		value.F("payload", value.Bytes(make([]byte, n))),
		value.F("values", seq),
		value.F("index", entries),
		value.F("kind", value.NewtypeVariant(2, value.Char('λ'))),
	)
}
