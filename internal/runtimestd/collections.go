package runtimestd

// listValue backs the List lattice kind: an ordered sequence of tagged-value
// handles (spec.md §4.5's List).
type listValue struct {
	items []int64
}

// mapValue backs the Map lattice kind. Keys are kept in insertion order
// alongside the usual lookup map so map iteration, stringify and JSON
// encoding walk keys deterministically, the way Go's own map would not.
type mapValue struct {
	keys   []string
	values map[string]int64
}

// structValue backs field access on an opaque struct handle returned from an
// FFI call; the code generator never constructs one directly (spec.md leaves
// struct layout to the runtime — see internal/codegen/expr.go's lowerMember).
type structValue struct {
	fields map[string]int64
}

var (
	listTable   = newHandleTable[*listValue]()
	mapTable    = newHandleTable[*mapValue]()
	structTable = newHandleTable[*structValue]()
)

// NewList implements list.new.
func NewList() uint64 {
	return listTable.alloc(&listValue{})
}

// ListGet implements list.get. Out-of-range indices return an encoded Unit
// tagged value rather than panicking across the FFI boundary.
func ListGet(handle uint64, index int64) int64 {
	lst, ok := listTable.get(handle)
	if !ok || index < 0 || index >= int64(len(lst.items)) {
		return encodeTagged(taggedValue{kind: tagUnit})
	}
	return lst.items[index]
}

// ListAppend implements append<list>: appends a pre-tagged value and returns
// the new length.
func ListAppend(handle uint64, tagged int64) int64 {
	lst, ok := listTable.get(handle)
	if !ok {
		return 0
	}
	lst.items = append(lst.items, tagged)
	return int64(len(lst.items))
}

// ListLen implements len for a list handle.
func ListLen(handle uint64) int64 {
	lst, ok := listTable.get(handle)
	if !ok {
		return 0
	}
	return int64(len(lst.items))
}

// Len implements the generic "len" registry entry, which spec.md §4.7 takes
// an opaque collection handle of either kind — the caller only knows it has
// a handle, not which table it lives in.
func Len(handle uint64) int64 {
	if lst, ok := listTable.get(handle); ok {
		return int64(len(lst.items))
	}
	if m, ok := mapTable.get(handle); ok {
		return int64(len(m.keys))
	}
	return 0
}

// ListCap implements cap for a list handle.
func ListCap(handle uint64) int64 {
	lst, ok := listTable.get(handle)
	if !ok {
		return 0
	}
	return int64(cap(lst.items))
}

// NewMap implements map.new.
func NewMap() uint64 {
	return mapTable.alloc(&mapValue{values: make(map[string]int64)})
}

// MapGet implements map.get.
func MapGet(handle uint64, key string) int64 {
	m, ok := mapTable.get(handle)
	if !ok {
		return encodeTagged(taggedValue{kind: tagUnit})
	}
	v, ok := m.values[key]
	if !ok {
		return encodeTagged(taggedValue{kind: tagUnit})
	}
	return v
}

// MapSet implements map.set.
func MapSet(handle uint64, key string, tagged int64) {
	m, ok := mapTable.get(handle)
	if !ok {
		return
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = tagged
}

// MapDelete implements delete<map>.
func MapDelete(handle uint64, key string) {
	m, ok := mapTable.get(handle)
	if !ok {
		return
	}
	if _, exists := m.values[key]; !exists {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// MapLen implements len for a map handle.
func MapLen(handle uint64) int64 {
	m, ok := mapTable.get(handle)
	if !ok {
		return 0
	}
	return int64(len(m.keys))
}

// RangeI64 implements range<int>, building a List over [start, end).
func RangeI64(start, end int64) uint64 {
	items := make([]int64, 0, max64(0, end-start))
	for i := start; i < end; i++ {
		items = append(items, encodeI64(i))
	}
	return listTable.alloc(&listValue{items: items})
}

// RangeF64 implements range<float>: a List stepping by 1.0 over [start, end).
func RangeF64(start, end float64) uint64 {
	var items []int64
	for v := start; v < end; v++ {
		items = append(items, encodeF64(v))
	}
	return listTable.alloc(&listValue{items: items})
}

// EnumerateList implements enumerate<list>: a List of (index, value) pairs,
// each pair itself encoded as a two-element List handle wrapped in a tagged
// handle value.
func EnumerateList(handle uint64) uint64 {
	lst, ok := listTable.get(handle)
	if !ok {
		return listTable.alloc(&listValue{})
	}
	out := make([]int64, 0, len(lst.items))
	for i, v := range lst.items {
		pair := listTable.alloc(&listValue{items: []int64{encodeI64(int64(i)), v}})
		out = append(out, encodeHandle(pair))
	}
	return listTable.alloc(&listValue{items: out})
}

// StructGetField implements __otter_struct_get_field: field lookup on an
// opaque struct handle, returning a tagged value (Unit if the handle or
// field is unknown — field access on a non-struct handle is already rejected
// at lowering time by internal/codegen's lowerMember).
func StructGetField(handle uint64, field string) int64 {
	s, ok := structTable.get(handle)
	if !ok {
		return encodeTagged(taggedValue{kind: tagUnit})
	}
	v, ok := s.fields[field]
	if !ok {
		return encodeTagged(taggedValue{kind: tagUnit})
	}
	return v
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
