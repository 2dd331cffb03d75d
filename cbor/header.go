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

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Header is the initial byte and argument of a CBOR data item
type Header struct {
	// Major is the major type, one of the CborType* constants
	Major uint8
	// Info is the additional information from the initial byte
	Info uint8
	// Arg is the integer value, length, count or tag number carried by the
	// header. It is 0 for indefinite-length items.
	Arg uint64
	// Size is the number of bytes taken by the header
	Size int
	// Indefinite is set for indefinite-length strings, arrays and maps
	Indefinite bool
}

// ErrUnexpectedEnd is returned when data ends in the middle of an item
var ErrUnexpectedEnd = errors.New("unexpected end of data")

// DecodeHeader parses the header at the start of data without consuming the
// item's content
func DecodeHeader(data []byte) (Header, error) {
	if len(data) == 0 {
		return Header{}, ErrUnexpectedEnd
	}
	firstByte := data[0]
	ret := Header{
		Major: firstByte & CborTypeMask,
		Info:  firstByte & CborInfoMask,
		Size:  1,
	}
	switch {
	case ret.Info < 24:
		// Argument encoded in the first byte
		ret.Arg = uint64(ret.Info)
	case ret.Info <= 27:
		// 1, 2, 4 or 8 byte argument follows, big-endian
		argLen := 1 << (ret.Info - 24)
		if len(data) < 1+argLen {
			return Header{}, ErrUnexpectedEnd
		}
		switch argLen {
		case 1:
			ret.Arg = uint64(data[1])
		case 2:
			ret.Arg = uint64(binary.BigEndian.Uint16(data[1:]))
		case 4:
			ret.Arg = uint64(binary.BigEndian.Uint32(data[1:]))
		default:
			ret.Arg = binary.BigEndian.Uint64(data[1:])
		}
		ret.Size += argLen
	case ret.Info == 31:
		switch ret.Major {
		case CborTypeByteString, CborTypeTextString, CborTypeArray, CborTypeMap:
			ret.Indefinite = true
		case CborTypeSimple:
			return Header{}, errors.New("unexpected break")
		default:
			return Header{}, fmt.Errorf(
				"invalid indefinite length for major type 0x%x",
				ret.Major,
			)
		}
	default:
		return Header{}, fmt.Errorf(
			"invalid additional info: %d",
			ret.Info,
		)
	}
	return ret, nil
}
