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

package varint

const (
	// MaxLen is the longest possible encoding of a 64-bit value
	MaxLen = 10

	continuationBit uint8 = 0x80
	signBit         uint8 = 0x40

	groupMask   = 0x7f
	leadMask    = 0x3f
	groupBits   = 7
	maxGroupLen = MaxLen - 1
)

// AppendUint appends the unsigned encoding of v to dst and returns the
// extended slice
func AppendUint(dst []byte, v uint64) []byte {
	// Groups are produced least-significant first, so they are stacked and
	// then drained in reverse
	var stack [maxGroupLen]byte
	n := 0
	for v&^groupMask != 0 {
		stack[n] = byte(v & groupMask)
		n++
		v >>= groupBits
	}
	lead := byte(v)
	if n > 0 {
		lead |= continuationBit
	}
	dst = append(dst, lead)
	return drain(dst, stack[:n])
}

// AppendInt appends the sign-magnitude encoding of v to dst and returns the
// extended slice
func AppendInt(dst []byte, v int64) []byte {
	var sign byte
	// Negate in the unsigned domain so that math.MinInt64 maps to 1<<63
	// instead of overflowing
	mag := uint64(v)
	if v < 0 {
		sign = signBit
		mag = -mag
	}
	var stack [maxGroupLen]byte
	n := 0
	for mag&^leadMask != 0 {
		stack[n] = byte(mag & groupMask)
		n++
		mag >>= groupBits
	}
	lead := byte(mag) | sign
	if n > 0 {
		lead |= continuationBit
	}
	dst = append(dst, lead)
	return drain(dst, stack[:n])
}

// drain pops the stacked groups most-significant first, flagging
// continuation on all but the final byte
func drain(dst []byte, stack []byte) []byte {
	for i := len(stack) - 1; i >= 0; i-- {
		b := stack[i]
		if i > 0 {
			b |= continuationBit
		}
		dst = append(dst, b)
	}
	return dst
}

// UintLen returns the number of bytes AppendUint writes for v
func UintLen(v uint64) int {
	n := 1
	for v&^groupMask != 0 {
		n++
		v >>= groupBits
	}
	return n
}

// IntLen returns the number of bytes AppendInt writes for v
func IntLen(v int64) int {
	mag := uint64(v)
	if v < 0 {
		mag = -mag
	}
	n := 1
	for mag&^leadMask != 0 {
		n++
		mag >>= groupBits
	}
	return n
}
