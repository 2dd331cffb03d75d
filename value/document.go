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

package value

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// maxDocumentDepth bounds nesting while walking a document
const maxDocumentDepth = 256

// DocumentError describes a problem at a specific location in a value document
type DocumentError struct {
	Line   int
	Column int
	Msg    string
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

func nodeError(n *yaml.Node, format string, args ...any) error {
	return &DocumentError{
		Line:   n.Line,
		Column: n.Column,
		Msg:    fmt.Sprintf(format, args...),
	}
}

// ParseJSON parses a JSON value document. Comments and trailing commas are
// permitted.
//
// Every node is an object with a single key naming its shape:
//
//	{"record": {
//	    "id":   {"u32": 9001},
//	    "name": {"str": "Hi"},
//	    "tags": {"seq": [{"char": "a"}, {"char": "b"}]},
//	    "kind": {"variant": {"index": 1, "value": {"i16": -42}}}
//	}}
//
// See ParseYAML for the full list of shapes.
func ParseJSON(data []byte) (Value, error) {
	return ParseYAML(jsonc.ToJSON(data))
}

// ParseYAML parses a YAML value document. Each node is a mapping with one of
// the following keys:
//
//	bool                      true or false
//	i8, i16, i32, i64         signed integer, range checked for the width
//	u8, u16, u32, u64         unsigned integer, range checked for the width
//	f32, f64                  floating point number
//	char                      string holding exactly one character
//	str                       string
//	bytes                     hex string
//	none                      ignored, usually null
//	some                      node
//	unit                      ignored, usually null
//	seq, tuple                list of nodes
//	map                       list of [key node, value node] pairs
//	record                    mapping of field name to node, in order
//	variant                   mapping with "index" and at most one of
//	                          "value" (node), "tuple" (list of nodes) or
//	                          "record" (mapping of field name to node)
func ParseYAML(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, errors.New("parse document: empty document")
	}
	return parseNode(doc.Content[0], 0)
}

// ParseJSONList parses a JSON array whose elements are value documents
func ParseJSONList(data []byte) ([]Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, errors.New("parse document: empty document")
	}
	return parseList(doc.Content[0], "document list", 0)
}

// ParseYAMLStream parses a stream of YAML value documents separated by
// "---" lines
func ParseYAMLStream(data []byte) ([]Value, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var ret []Value
	for {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("parse document %d: %w", len(ret), err)
		}
		if len(doc.Content) != 1 {
			return nil, fmt.Errorf("parse document %d: empty document", len(ret))
		}
		v, err := parseNode(doc.Content[0], 0)
		if err != nil {
			return nil, fmt.Errorf("parse document %d: %w", len(ret), err)
		}
		ret = append(ret, v)
	}
	if len(ret) == 0 {
		return nil, errors.New("parse document: empty document")
	}
	return ret, nil
}

func parseNode(n *yaml.Node, depth int) (Value, error) {
	if depth > maxDocumentDepth {
		return nil, nodeError(n, "document nested deeper than %d levels", maxDocumentDepth)
	}
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return nil, nodeError(n, "expected a mapping with exactly one shape key")
	}
	key := n.Content[0].Value
	body := n.Content[1]
	if body.Kind == yaml.AliasNode {
		body = body.Alias
	}
	switch key {
	case "bool":
		var b bool
		if err := scalar(body, key); err != nil {
			return nil, err
		}
		if err := body.Decode(&b); err != nil {
			return nil, nodeError(body, "invalid bool %q", body.Value)
		}
		return Bool(b), nil
	case "i8", "i16", "i32", "i64":
		bits, _ := strconv.Atoi(key[1:])
		if err := scalar(body, key); err != nil {
			return nil, err
		}
		v, err := strconv.ParseInt(body.Value, 0, bits)
		if err != nil {
			return nil, nodeError(body, "invalid %s %q: %s", key, body.Value, numError(err))
		}
		return Int{Width: Width(bits), V: v}, nil
	case "u8", "u16", "u32", "u64":
		bits, _ := strconv.Atoi(key[1:])
		if err := scalar(body, key); err != nil {
			return nil, err
		}
		v, err := strconv.ParseUint(body.Value, 0, bits)
		if err != nil {
			return nil, nodeError(body, "invalid %s %q: %s", key, body.Value, numError(err))
		}
		return Uint{Width: Width(bits), V: v}, nil
	case "f32":
		if err := scalar(body, key); err != nil {
			return nil, err
		}
		v, err := strconv.ParseFloat(body.Value, 32)
		if err != nil {
			return nil, nodeError(body, "invalid f32 %q: %s", body.Value, numError(err))
		}
		return Float32(v), nil
	case "f64":
		if err := scalar(body, key); err != nil {
			return nil, err
		}
		v, err := strconv.ParseFloat(body.Value, 64)
		if err != nil {
			return nil, nodeError(body, "invalid f64 %q: %s", body.Value, numError(err))
		}
		return Float64(v), nil
	case "char":
		if err := scalar(body, key); err != nil {
			return nil, err
		}
		r, size := utf8.DecodeRuneInString(body.Value)
		if (r == utf8.RuneError && size <= 1) || size != len(body.Value) {
			return nil, nodeError(body, "char must hold exactly one character, found %q", body.Value)
		}
		return Char(r), nil
	case "str":
		if err := scalar(body, key); err != nil {
			return nil, err
		}
		if body.ShortTag() == "!!null" {
			return nil, nodeError(body, "str requires a string, found null")
		}
		return String(body.Value), nil
	case "bytes":
		if err := scalar(body, key); err != nil {
			return nil, err
		}
		data, err := hex.DecodeString(strings.Join(strings.Fields(body.Value), ""))
		if err != nil {
			return nil, nodeError(body, "invalid hex bytes: %s", err)
		}
		return Bytes(data), nil
	case "none":
		return None(), nil
	case "some":
		inner, err := parseNode(body, depth+1)
		if err != nil {
			return nil, err
		}
		return Some(inner), nil
	case "unit":
		return Unit{}, nil
	case "seq":
		elems, err := parseList(body, key, depth)
		if err != nil {
			return nil, err
		}
		return Seq(elems), nil
	case "tuple":
		elems, err := parseList(body, key, depth)
		if err != nil {
			return nil, err
		}
		return Tuple(elems), nil
	case "map":
		return parseMap(body, depth)
	case "record":
		fields, err := parseFields(body, key, depth)
		if err != nil {
			return nil, err
		}
		return Record(fields), nil
	case "variant":
		return parseVariant(body, depth)
	default:
		return nil, nodeError(n.Content[0], "unknown shape %q", key)
	}
}

func scalar(n *yaml.Node, key string) error {
	if n.Kind != yaml.ScalarNode {
		return nodeError(n, "%s requires a scalar", key)
	}
	return nil
}

func numError(err error) string {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return numErr.Err.Error()
	}
	return err.Error()
}

func parseList(n *yaml.Node, key string, depth int) ([]Value, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, nodeError(n, "%s requires a list", key)
	}
	ret := make([]Value, 0, len(n.Content))
	for _, item := range n.Content {
		v, err := parseNode(item, depth+1)
		if err != nil {
			return nil, err
		}
		ret = append(ret, v)
	}
	return ret, nil
}

func parseMap(n *yaml.Node, depth int) (Value, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, nodeError(n, "map requires a list of [key, value] pairs")
	}
	ret := make(Map, 0, len(n.Content))
	for _, pair := range n.Content {
		if pair.Kind != yaml.SequenceNode || len(pair.Content) != 2 {
			return nil, nodeError(pair, "map entry must be a [key, value] pair")
		}
		key, err := parseNode(pair.Content[0], depth+1)
		if err != nil {
			return nil, err
		}
		val, err := parseNode(pair.Content[1], depth+1)
		if err != nil {
			return nil, err
		}
		ret = append(ret, Entry{Key: key, Value: val})
	}
	return ret, nil
}

func parseFields(n *yaml.Node, key string, depth int) ([]Field, error) {
	if n.Kind != yaml.MappingNode {
		return nil, nodeError(n, "%s requires a mapping of field names", key)
	}
	ret := make([]Field, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		v, err := parseNode(n.Content[i+1], depth+1)
		if err != nil {
			return nil, err
		}
		ret = append(ret, Field{Name: n.Content[i].Value, Value: v})
	}
	return ret, nil
}

func parseVariant(n *yaml.Node, depth int) (Value, error) {
	if n.Kind != yaml.MappingNode {
		return nil, nodeError(n, "variant requires a mapping")
	}
	var index *uint32
	var ret Variant
	payloads := 0
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode := n.Content[i]
		body := n.Content[i+1]
		switch keyNode.Value {
		case "index":
			if err := scalar(body, "index"); err != nil {
				return nil, err
			}
			v, err := strconv.ParseUint(body.Value, 0, 32)
			if err != nil {
				return nil, nodeError(body, "invalid variant index %q: %s", body.Value, numError(err))
			}
			idx := uint32(v)
			index = &idx
		case "value":
			payloads++
			v, err := parseNode(body, depth+1)
			if err != nil {
				return nil, err
			}
			ret.Shape = ShapeNewtype
			ret.Fields = []Field{{Value: v}}
		case "tuple":
			payloads++
			elems, err := parseList(body, "tuple", depth)
			if err != nil {
				return nil, err
			}
			ret.Shape = ShapeTuple
			ret.Fields = make([]Field, 0, len(elems))
			for _, elem := range elems {
				ret.Fields = append(ret.Fields, Field{Value: elem})
			}
		case "record":
			payloads++
			fields, err := parseFields(body, "record", depth)
			if err != nil {
				return nil, err
			}
			ret.Shape = ShapeRecord
			ret.Fields = fields
		default:
			return nil, nodeError(keyNode, "unknown variant key %q", keyNode.Value)
		}
	}
	if index == nil {
		return nil, nodeError(n, "variant requires an index")
	}
	if payloads > 1 {
		return nil, nodeError(n, "variant accepts at most one of value, tuple or record")
	}
	ret.Index = *index
	return ret, nil
}
