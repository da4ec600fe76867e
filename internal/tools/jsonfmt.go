package tools

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/ryan-rushton/textkit/internal/tools/number"
)

const jsonIndent = "  "

// object keeps keys in first-seen order; a repeated key overwrites the
// earlier value in place.
type object struct {
	keys   []string
	values map[string]any
}

// maxArrayIndex is 2^32-2, the largest key treated as an array index.
const maxArrayIndex = 1<<32 - 2

// orderedKeys lists array-index keys ("0", "17", ...) first in ascending
// numeric order, then every other key in first-seen order. This is the
// property order JSON.stringify emits.
func (o *object) orderedKeys() []string {
	type indexKey struct {
		n   uint64
		key string
	}
	var indexes []indexKey
	var named []string
	for _, k := range o.keys {
		if n, ok := arrayIndex(k); ok {
			indexes = append(indexes, indexKey{n, k})
		} else {
			named = append(named, k)
		}
	}
	slices.SortFunc(indexes, func(a, b indexKey) int { return cmp.Compare(a.n, b.n) })

	out := make([]string, 0, len(o.keys))
	for _, ik := range indexes {
		out = append(out, ik.key)
	}
	return append(out, named...)
}

// arrayIndex reports whether k is a canonical unsigned integer no larger
// than maxArrayIndex. "01" and "+1" are not canonical.
func arrayIndex(k string) (uint64, bool) {
	if k == "" || (len(k) > 1 && k[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(k); i++ {
		if k[i] < '0' || k[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(k, 10, 64)
	if err != nil || n > maxArrayIndex {
		return 0, false
	}
	return n, true
}

// FormatJSON parses the input and re-serializes it with two-space
// indentation. Objects keep insertion order except that array-index keys
// come first.
func FormatJSON(input string) string {
	v, err := parseJSON(input)
	if err != nil {
		return MsgInvalidJSON
	}
	var b strings.Builder
	writeJSON(&b, v, 0)
	return b.String()
}

func parseJSON(input string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(input))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("trailing data after JSON value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		obj := &object{values: map[string]any{}}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("object key is %T", keyTok)
			}
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			if _, seen := obj.values[key]; !seen {
				obj.keys = append(obj.keys, key)
			}
			obj.values[key] = val
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil

	case '[':
		arr := []any{}
		for dec.More() {
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	}

	return nil, fmt.Errorf("unexpected delimiter %q", delim)
}

func writeJSON(b *strings.Builder, v any, depth int) {
	switch v := v.(type) {
	case *object:
		if len(v.keys) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteString("{\n")
		keys := v.orderedKeys()
		for i, k := range keys {
			b.WriteString(strings.Repeat(jsonIndent, depth+1))
			writeJSONString(b, k)
			b.WriteString(": ")
			writeJSON(b, v.values[k], depth+1)
			if i < len(keys)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat(jsonIndent, depth))
		b.WriteByte('}')

	case []any:
		if len(v) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[\n")
		for i, elem := range v {
			b.WriteString(strings.Repeat(jsonIndent, depth+1))
			writeJSON(b, elem, depth+1)
			if i < len(v)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat(jsonIndent, depth))
		b.WriteByte(']')

	case json.Number:
		f, _ := strconv.ParseFloat(string(v), 64)
		if math.IsInf(f, 0) {
			// Out-of-range numbers parse to Infinity, which JSON cannot hold.
			b.WriteString("null")
			return
		}
		b.WriteString(number.Format(f))

	case string:
		writeJSONString(b, v)

	case bool:
		b.WriteString(strconv.FormatBool(v))

	case nil:
		b.WriteString("null")
	}
}

// writeJSONString escapes only what JSON requires: quotes, backslashes and
// control characters. Everything else is written verbatim.
func writeJSONString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}
