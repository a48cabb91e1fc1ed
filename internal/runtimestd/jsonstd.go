package runtimestd

import (
	"bytes"
	"encoding/json"
)

// JSONEncode implements json.encode: scalars marshal directly, lists become
// JSON arrays and maps JSON objects (element by element, recursively), and
// a bare handle or an unknown kind becomes null.
func JSONEncode(tagged int64) (string, bool) {
	v, err := jsonValueOf(tagged)
	if err != nil {
		return "", false
	}
	out, err := json.Marshal(v)
	if err != nil {
		return "", false
	}
	return string(out), true
}

func jsonValueOf(tagged int64) (any, error) {
	v := taggedOf(tagged)
	switch v.kind {
	case tagUnit:
		return nil, nil
	case tagBool:
		return v.i != 0, nil
	case tagI64:
		return v.i, nil
	case tagF64:
		return v.f, nil
	case tagStr:
		return v.s, nil
	case tagList:
		lst, ok := listTable.get(v.h)
		if !ok {
			return []any{}, nil
		}
		out := make([]any, len(lst.items))
		for i, item := range lst.items {
			jv, err := jsonValueOf(item)
			if err != nil {
				return nil, err
			}
			out[i] = jv
		}
		return out, nil
	case tagMap:
		m, ok := mapTable.get(v.h)
		if !ok {
			return map[string]any{}, nil
		}
		out := make(map[string]any, len(m.keys))
		for _, k := range m.keys {
			jv, err := jsonValueOf(m.values[k])
			if err != nil {
				return nil, err
			}
			out[k] = jv
		}
		return out, nil
	default:
		return nil, nil
	}
}

// JSONDecode implements json.decode: parses text into a tagged value tree.
func JSONDecode(text string) (int64, bool) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return 0, false
	}
	return encodeAny(v), true
}

func encodeAny(v any) int64 {
	switch t := v.(type) {
	case nil:
		return encodeTagged(taggedValue{kind: tagUnit})
	case bool:
		return encodeBool(t)
	case float64:
		return encodeF64(t)
	case string:
		return encodeStr(t)
	case []any:
		items := make([]int64, len(t))
		for i, item := range t {
			items[i] = encodeAny(item)
		}
		h := listTable.alloc(&listValue{items: items})
		return encodeTagged(taggedValue{kind: tagList, h: h})
	case map[string]any:
		mv := &mapValue{values: make(map[string]int64, len(t))}
		for k, item := range t {
			mv.keys = append(mv.keys, k)
			mv.values[k] = encodeAny(item)
		}
		h := mapTable.alloc(mv)
		return encodeTagged(taggedValue{kind: tagMap, h: h})
	default:
		return encodeTagged(taggedValue{kind: tagUnit})
	}
}

// JSONPretty implements json.pretty: re-encodes text with indentation.
func JSONPretty(text string) (string, bool) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(text), "", "  "); err != nil {
		return "", false
	}
	return buf.String(), true
}

// JSONValidate implements json.validate.
func JSONValidate(text string) bool {
	return json.Valid([]byte(text))
}
