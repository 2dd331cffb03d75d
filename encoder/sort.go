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

package encoder

import (
	"bytes"
	"slices"
)

type encodedPair struct {
	key   []byte
	value []byte
}

// encodePair encodes a key and a value into separate buffers at the current
// depth
func (e *Encoder) encodePair(key, val func(*Encoder) error) (encodedPair, error) {
	keyEnc := e.child()
	if err := key(keyEnc); err != nil {
		return encodedPair{}, err
	}
	valEnc := e.child()
	if err := val(valEnc); err != nil {
		return encodedPair{}, err
	}
	return encodedPair{key: keyEnc.buf, value: valEnc.buf}, nil
}

// appendSorted writes pairs ordered by their key bytes. Pairs with equal keys
// keep their relative order.
func (e *Encoder) appendSorted(pairs []encodedPair) {
	slices.SortStableFunc(pairs, func(a, b encodedPair) int {
		return bytes.Compare(a.key, b.key)
	})
	for _, pair := range pairs {
		e.buf = append(e.buf, pair.key...)
		e.buf = append(e.buf, pair.value...)
	}
}

// child returns an empty Encoder sharing this Encoder's configuration and
// current depth
func (e *Encoder) child() *Encoder {
	return &Encoder{
		config: e.config,
		logger: e.logger,
		depth:  e.depth,
	}
}
