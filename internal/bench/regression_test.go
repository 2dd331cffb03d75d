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
	"os"
	"strconv"
	"testing"

	"github.com/blinklabs-io/compactbin/encoder"
	"github.com/blinklabs-io/compactbin/varint"
)

// Pre-computed inputs for allocation tests.
// These are initialized once to avoid including setup allocations in tests.
var (
	regressionBuf     = make([]byte, 0, varint.MaxLen)
	regressionRecord  = LargeRecord(64)
	regressionAccount = NewAccount(64)
	regressionEncoder = encoder.New(encoder.WithInitialCapacity(4096))
)

// getThresholdMultiplier returns the allocation threshold multiplier from
// environment. Default is 1.0 (no adjustment). Set
// COMPACTBIN_ALLOC_THRESHOLD_MULTIPLIER to override.
func getThresholdMultiplier() float64 {
	if v := os.Getenv("COMPACTBIN_ALLOC_THRESHOLD_MULTIPLIER"); v != "" {
		if m, err := strconv.ParseFloat(v, 64); err == nil && m > 0 {
			return m
		}
	}
	return 1.0
}

// TestAllocationRegression tests that the integer codecs never allocate when
// the destination has room.
//
// To adjust thresholds temporarily (e.g., during optimization work):
//
//	COMPACTBIN_ALLOC_THRESHOLD_MULTIPLIER=1.5 go test \
//	    -run=TestAllocationRegression ./internal/bench/...
func TestAllocationRegression(t *testing.T) {
	multiplier := getThresholdMultiplier()

	tests := []struct {
		name      string
		fn        func() any
		maxAllocs int64
	}{
		{"AppendUint", appendUintOnce, 0},
		{"AppendInt", appendIntOnce, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			allocs := testing.AllocsPerRun(100, func() {
				_ = tc.fn()
			})

			adjustedLimit := float64(tc.maxAllocs) * multiplier
			if allocs > adjustedLimit {
				t.Errorf(
					"%s: %.0f allocs > %.0f limit (base: %d, multiplier: %.2f)",
					tc.name,
					allocs,
					adjustedLimit,
					tc.maxAllocs,
					multiplier,
				)
			}
		})
	}
}

// TestAllocationBaselines logs allocation counts for the main encode paths.
// It does not fail; run with -v to record new baselines.
func TestAllocationBaselines(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping baseline test in short mode")
	}

	tests := []struct {
		name string
		fn   func() any
	}{
		{"AppendUint", appendUintOnce},
		{"AppendInt", appendIntOnce},
		{"EncodeRecord", encodeRecordOnce},
		{"EncodeRecordReuse", encodeRecordReuseOnce},
		{"Marshal", marshalOnce},
	}

	t.Log("Allocation baselines:")
	for _, tc := range tests {
		allocs := testing.AllocsPerRun(1000, func() {
			_ = tc.fn()
		})

		t.Logf("  %s: %.2f allocs/op", tc.name, allocs)
	}
}

func appendUintOnce() any {
	regressionBuf = varint.AppendUint(regressionBuf[:0], 90_000_000_000_000)
	return nil
}

func appendIntOnce() any {
	regressionBuf = varint.AppendInt(regressionBuf[:0], -2_000_000_000)
	return nil
}

func encodeRecordOnce() any {
	data, err := encoder.Encode(regressionRecord)
	if err != nil {
		panic("encode failed: " + err.Error())
	}
	return data
}

func encodeRecordReuseOnce() any {
	regressionEncoder.Reset()
	if err := regressionEncoder.Encode(regressionRecord); err != nil {
		panic("encode failed: " + err.Error())
	}
	return nil
}

func marshalOnce() any {
	data, err := encoder.Marshal(regressionAccount)
	if err != nil {
		panic("marshal failed: " + err.Error())
	}
	return data
}
