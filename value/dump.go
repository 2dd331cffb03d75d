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
	"fmt"
)

// Dump generates an indented string representing a value for debugging purposes.
// Streams and Funcs are not consumed; only their declared shape is shown.
func Dump(v Value, prefix string) string {
	var ret bytes.Buffer
	dumpValue(&ret, v, prefix, "")
	return ret.String()
}

func dumpValue(ret *bytes.Buffer, v Value, prefix string, label string) {
	switch v := v.(type) {
	case nil:
		fmt.Fprintf(ret, "%s%s<nil>,\n", prefix, label)
	case Bool:
		fmt.Fprintf(ret, "%s%s%t,\n", prefix, label, bool(v))
	case Int:
		fmt.Fprintf(ret, "%s%s%d (i%d),\n", prefix, label, v.V, v.Width)
	case Uint:
		fmt.Fprintf(ret, "%s%s0x%x (u%d %d),\n", prefix, label, v.V, v.Width, v.V)
	case Float32:
		fmt.Fprintf(ret, "%s%s%g (f32),\n", prefix, label, float32(v))
	case Float64:
		fmt.Fprintf(ret, "%s%s%g (f64),\n", prefix, label, float64(v))
	case Char:
		fmt.Fprintf(ret, "%s%s%q,\n", prefix, label, rune(v))
	case String:
		fmt.Fprintf(ret, "%s%s%q,\n", prefix, label, string(v))
	case Bytes:
		if len(v) <= 32 {
			fmt.Fprintf(ret, "%s%s<bytes %s> (length %d),\n", prefix, label, hex.EncodeToString(v), len(v))
		} else {
			fmt.Fprintf(ret, "%s%s<bytes> (length %d),\n", prefix, label, len(v))
		}
	case Option:
		if !v.Present() {
			fmt.Fprintf(ret, "%s%sNone,\n", prefix, label)
			return
		}
		fmt.Fprintf(ret, "%s%sSome(\n", prefix, label)
		dumpValue(ret, v.Inner, nestedPrefix(prefix), "")
		fmt.Fprintf(ret, "%s),\n", prefix)
	case Unit:
		fmt.Fprintf(ret, "%s%s(),\n", prefix, label)
	case Seq:
		fmt.Fprintf(ret, "%s%s[\n", prefix, label)
		for _, elem := range v {
			dumpValue(ret, elem, nestedPrefix(prefix), "")
		}
		fmt.Fprintf(ret, "%s],\n", prefix)
	case Tuple:
		fmt.Fprintf(ret, "%s%s(\n", prefix, label)
		for _, elem := range v {
			dumpValue(ret, elem, nestedPrefix(prefix), "")
		}
		fmt.Fprintf(ret, "%s),\n", prefix)
	case Stream:
		fmt.Fprintf(ret, "%s%s<stream> (length %s),\n", prefix, label, lengthString(v.Len))
	case Map:
		fmt.Fprintf(ret, "%s%s{\n", prefix, label)
		newPrefix := nestedPrefix(prefix)
		for _, entry := range v {
			fmt.Fprintf(ret, "%skey:\n", newPrefix)
			dumpValue(ret, entry.Key, nestedPrefix(newPrefix), "")
			fmt.Fprintf(ret, "%svalue:\n", newPrefix)
			dumpValue(ret, entry.Value, nestedPrefix(newPrefix), "")
		}
		fmt.Fprintf(ret, "%s},\n", prefix)
	case MapStream:
		fmt.Fprintf(ret, "%s%s<map stream> (length %s),\n", prefix, label, lengthString(v.Len))
	case Record:
		fmt.Fprintf(ret, "%s%s{\n", prefix, label)
		dumpFields(ret, v, nestedPrefix(prefix))
		fmt.Fprintf(ret, "%s},\n", prefix)
	case Variant:
		fmt.Fprintf(ret, "%s%s#%d %s", prefix, label, v.Index, v.Shape)
		if v.Shape == ShapeUnit {
			ret.WriteString(",\n")
			return
		}
		ret.WriteString(" {\n")
		dumpFields(ret, v.Fields, nestedPrefix(prefix))
		fmt.Fprintf(ret, "%s},\n", prefix)
	case Func:
		fmt.Fprintf(ret, "%s%s<func>,\n", prefix, label)
	default:
		fmt.Fprintf(ret, "%s%s%#v,\n", prefix, label, v)
	}
}

func dumpFields(ret *bytes.Buffer, fields []Field, prefix string) {
	for _, field := range fields {
		label := ""
		if field.Name != "" {
			label = field.Name + ": "
		}
		dumpValue(ret, field.Value, prefix, label)
	}
}

// nestedPrefix adds 2 more spaces to the prefix. A user-provided prefix that
// doesn't start with a space is dropped, as it only applies to the top level.
func nestedPrefix(prefix string) string {
	if len(prefix) > 1 && prefix[0] != ' ' {
		prefix = ""
	}
	return "  " + prefix
}

func lengthString(length int) string {
	if length < 0 {
		return "unknown"
	}
	return fmt.Sprintf("%d", length)
}
