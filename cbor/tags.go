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

package cbor

const (
	// Bignums
	CborTagPositiveBignum = 2
	CborTagNegativeBignum = 3

	// Tag ranges for "alternatives"
	// https://www.ietf.org/archive/id/draft-bormann-cbor-notable-tags-07.html#name-enumerated-alternative-data
	CborTagAlternative1Min = 121
	CborTagAlternative1Max = 127
	CborTagAlternative2Min = 1280
	CborTagAlternative2Max = 1400
	CborTagAlternative3    = 101
)

// IsAlternativeTag returns true if the given CBOR tag number represents
// an enumerated alternative
func IsAlternativeTag(tagNum uint64) bool {
	return (tagNum >= CborTagAlternative1Min && tagNum <= CborTagAlternative1Max) ||
		(tagNum >= CborTagAlternative2Min && tagNum <= CborTagAlternative2Max) ||
		tagNum == CborTagAlternative3
}

// tagToAlternative converts a compact alternative tag number to its
// constructor number. Tag 101 carries the constructor in its content and is
// not handled here.
func tagToAlternative(tagNum uint64) (uint32, bool) {
	switch {
	case tagNum >= CborTagAlternative1Min && tagNum <= CborTagAlternative1Max:
		return uint32(tagNum - CborTagAlternative1Min), true
	case tagNum >= CborTagAlternative2Min && tagNum <= CborTagAlternative2Max:
		return uint32(tagNum-CborTagAlternative2Min) + 7, true
	default:
		return 0, false
	}
}
