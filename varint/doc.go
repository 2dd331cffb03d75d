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

// Package varint implements the variable-length integer forms used by the
// compact binary format.
//
// Both forms emit 7-bit groups most-significant first. Every byte except the
// last has its high bit (0x80) set to signal that another byte follows.
//
// Unsigned values use all 7 low bits of every byte for magnitude:
//
//	[c:1][m:7] [c:1][m:7] ... [0][m:7]
//
// Signed values use sign-magnitude rather than two's complement. The leading
// byte carries the sign in bit 0x40 and the top 6 magnitude bits; any
// following bytes use the unsigned layout:
//
//	[c:1][s:1][m:6] [c:1][m:7] ... [0][m:7]
//
// Zero is always the single byte 0x00, and there is no negative zero.
//
// Examples:
//
//	AppendUint(nil, 9001)  // C6 29
//	AppendInt(nil, -42)    // 6A
//	AppendInt(nil, 4000)   // 9F 20
//	AppendInt(nil, 9001)   // 80 C6 29
package varint
