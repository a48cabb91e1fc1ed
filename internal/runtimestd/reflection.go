package runtimestd

import "fmt"

var taggedKindNames = map[taggedKind]string{
	tagUnit:   "unit",
	tagBool:   "bool",
	tagI64:    "i64",
	tagF64:    "f64",
	tagStr:    "str",
	tagList:   "list",
	tagMap:    "map",
	tagHandle: "handle",
}

// TypeOf implements type_of<…>: the runtime-visible kind name of a tagged
// value.
func TypeOf(tagged int64) string {
	v := taggedOf(tagged)
	if name, ok := taggedKindNames[v.kind]; ok {
		return name
	}
	return "unknown"
}

// Fields implements fields: the field names of an opaque struct handle, as
// a List of tagged strings in no particular order (Go map iteration order).
func Fields(structHandle uint64) uint64 {
	s, ok := structTable.get(structHandle)
	if !ok {
		return listTable.alloc(&listValue{})
	}
	items := make([]int64, 0, len(s.fields))
	for name := range s.fields {
		items = append(items, encodeStr(name))
	}
	return listTable.alloc(&listValue{items: items})
}

// Stringify implements stringify<…>: a human-readable rendering of any
// tagged value, used by the runtime wherever OtterLang needs to print an
// arbitrary value rather than a known-Str one.
func Stringify(tagged int64) string {
	v := taggedOf(tagged)
	switch v.kind {
	case tagUnit:
		return "()"
	case tagBool:
		if v.i != 0 {
			return "true"
		}
		return "false"
	case tagI64:
		return fmt.Sprintf("%d", v.i)
	case tagF64:
		return fmt.Sprintf("%g", v.f)
	case tagStr:
		return v.s
	case tagList:
		lst, ok := listTable.get(v.h)
		if !ok {
			return "[]"
		}
		return stringifyList(lst)
	case tagMap:
		m, ok := mapTable.get(v.h)
		if !ok {
			return "{}"
		}
		return stringifyMap(m)
	case tagHandle:
		return fmt.Sprintf("<handle %d>", v.h)
	default:
		return "<unknown>"
	}
}

func stringifyList(lst *listValue) string {
	out := "["
	for i, item := range lst.items {
		if i > 0 {
			out += ", "
		}
		out += Stringify(item)
	}
	return out + "]"
}

func stringifyMap(m *mapValue) string {
	out := "{"
	for i, k := range m.keys {
		if i > 0 {
			out += ", "
		}
		out += k + ": " + Stringify(m.values[k])
	}
	return out + "}"
}
