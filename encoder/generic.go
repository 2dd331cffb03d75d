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
	"sync"

	"github.com/jinzhu/copier"
)

var (
	genericTypeCache      = map[reflect.Type]reflect.Type{}
	genericTypeCacheMutex sync.RWMutex
)

// MarshalGeneric encodes the struct pointed to by src without using the
// struct's own MarshalCompact or UnionCase methods. This lets such a method
// delegate to the default structural encoding of its own type.
func MarshalGeneric(src any, opts ...Option) ([]byte, error) {
	valueSrc := reflect.ValueOf(src)
	if valueSrc.Kind() != reflect.Pointer ||
		valueSrc.IsNil() ||
		valueSrc.Elem().Kind() != reflect.Struct {
		return nil, errors.New("source must be a non-nil pointer to a struct")
	}
	tmpSrc := reflect.New(genericType(valueSrc.Elem().Type()))
	if err := copier.Copy(tmpSrc.Interface(), src); err != nil {
		return nil, err
	}
	return Marshal(tmpSrc.Elem().Interface(), opts...)
}

// genericType returns a method-less struct type with the encodable fields of
// typeSrc
func genericType(typeSrc reflect.Type) reflect.Type {
	genericTypeCacheMutex.RLock()
	tmpType, ok := genericTypeCache[typeSrc]
	genericTypeCacheMutex.RUnlock()
	if ok {
		return tmpType
	}
	fields := []reflect.StructField{}
	for i := range typeSrc.NumField() {
		field := typeSrc.Field(i)
		if !field.IsExported() || field.Tag.Get(structTag) == "-" {
			continue
		}
		// Embedded fields would promote the methods being bypassed
		field.Anonymous = false
		fields = append(fields, field)
	}
	tmpType = reflect.StructOf(fields)
	genericTypeCacheMutex.Lock()
	genericTypeCache[typeSrc] = tmpType
	genericTypeCacheMutex.Unlock()
	return tmpType
}
