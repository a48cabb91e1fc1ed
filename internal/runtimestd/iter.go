package runtimestd

// iteratorState is the shared cursor behind every __otter_iter_<kind> family
// (spec.md §4.5): list iterators walk the elements present at
// __otter_iter_list time, map iterators walk the keys present at
// __otter_iter_map time (each value is read from the live map when its key
// is reached), string iterators walk a rune slice.
type iteratorState struct {
	family     string
	listItems  []int64
	strRunes   []rune
	mapKeys    []string
	mapValues  map[string]int64
	pos        int
}

var iterTable = newHandleTable[*iteratorState]()

// IterList implements __otter_iter_list.
func IterList(handle uint64) uint64 {
	lst, ok := listTable.get(handle)
	items := []int64(nil)
	if ok {
		items = lst.items
	}
	return iterTable.alloc(&iteratorState{family: "list", listItems: items})
}

// IterString implements __otter_iter_string over s's runes.
func IterString(s string) uint64 {
	return iterTable.alloc(&iteratorState{family: "string", strRunes: []rune(s)})
}

// IterMap implements __otter_iter_map, snapshotting key order.
func IterMap(handle uint64) uint64 {
	m, ok := mapTable.get(handle)
	if !ok {
		return iterTable.alloc(&iteratorState{family: "map"})
	}
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return iterTable.alloc(&iteratorState{family: "map", mapKeys: keys, mapValues: m.values})
}

// IterHasNext implements every __otter_iter_has_next_<kind>.
func IterHasNext(handle uint64) bool {
	it, ok := iterTable.get(handle)
	if !ok {
		return false
	}
	switch it.family {
	case "string":
		return it.pos < len(it.strRunes)
	case "map":
		return it.pos < len(it.mapKeys)
	default:
		return it.pos < len(it.listItems)
	}
}

// IterNext implements every __otter_iter_next_<kind>, returning a tagged
// value handle decodeable by the element type the for-loop expects.
func IterNext(handle uint64) int64 {
	it, ok := iterTable.get(handle)
	if !ok {
		return encodeTagged(taggedValue{kind: tagUnit})
	}
	switch it.family {
	case "string":
		if it.pos >= len(it.strRunes) {
			return encodeTagged(taggedValue{kind: tagUnit})
		}
		r := it.strRunes[it.pos]
		it.pos++
		return encodeStr(string(r))
	case "map":
		if it.pos >= len(it.mapKeys) {
			return encodeTagged(taggedValue{kind: tagUnit})
		}
		key := it.mapKeys[it.pos]
		it.pos++
		pair := listTable.alloc(&listValue{items: []int64{encodeStr(key), it.mapValues[key]}})
		return encodeHandle(pair)
	default:
		if it.pos >= len(it.listItems) {
			return encodeTagged(taggedValue{kind: tagUnit})
		}
		v := it.listItems[it.pos]
		it.pos++
		return v
	}
}

// IterFree implements every __otter_iter_free_<kind>.
func IterFree(handle uint64) {
	iterTable.release(handle)
}
