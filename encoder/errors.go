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
	"errors"
	"reflect"
)

var (
	// ErrLengthRequired is returned when a sequence or map is offered
	// without a known element count. The format cannot represent
	// containers of unknown length.
	ErrLengthRequired = errors.New("length required: sequence and map lengths must be known before encoding")

	// ErrLengthMismatch is returned when a stream yields a different number
	// of items than it declared
	ErrLengthMismatch = errors.New("stream produced a different number of items than its declared length")

	// ErrNestingTooDeep is returned when containers are nested beyond the
	// configured maximum depth
	ErrNestingTooDeep = errors.New("nesting too deep")

	// ErrInvalidChar is returned for a char that is not a Unicode scalar value
	ErrInvalidChar = errors.New("invalid char: not a Unicode scalar value")

	// ErrNilValue is returned when a nil value or nil interface is offered
	// for encoding
	ErrNilValue = errors.New("cannot encode nil value")

	// ErrUnsupportedValue is returned for a value.Value implementation the
	// encoder has no rule for
	ErrUnsupportedValue = errors.New("unsupported value")
)

// UnsupportedTypeError is returned by Marshal for Go types that have no
// structural shape, such as channels and functions
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return "unsupported type: " + e.Type.String()
}
