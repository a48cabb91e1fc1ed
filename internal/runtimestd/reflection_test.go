package runtimestd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeOf_NamesEveryTaggedKind(t *testing.T) {
	assert.Equal(t, "bool", TypeOf(encodeBool(true)))
	assert.Equal(t, "i64", TypeOf(encodeI64(1)))
	assert.Equal(t, "f64", TypeOf(encodeF64(1)))
	assert.Equal(t, "str", TypeOf(encodeStr("x")))
	assert.Equal(t, "handle", TypeOf(encodeHandle(1)))

	lst := NewList()
	assert.Equal(t, "list", TypeOf(encodeTagged(taggedValue{kind: tagList, h: lst})))

	m := NewMap()
	assert.Equal(t, "map", TypeOf(encodeTagged(taggedValue{kind: tagMap, h: m})))
}

func TestFields_OnUnknownHandleIsEmptyList(t *testing.T) {
	h := Fields(999999)
	assert.Equal(t, int64(0), ListLen(h))
}

func TestFields_ListsStructFieldNames(t *testing.T) {
	h := structTable.alloc(&structValue{fields: map[string]int64{
		"x": encodeI64(1),
		"y": encodeI64(2),
	}})

	names := Fields(h)
	assert.Equal(t, int64(2), ListLen(names))
}

func TestStringify_ScalarsAndCollections(t *testing.T) {
	assert.Equal(t, "()", Stringify(encodeTagged(taggedValue{kind: tagUnit})))
	assert.Equal(t, "true", Stringify(encodeBool(true)))
	assert.Equal(t, "false", Stringify(encodeBool(false)))
	assert.Equal(t, "42", Stringify(encodeI64(42)))
	assert.Equal(t, "hi", Stringify(encodeStr("hi")))

	lst := NewList()
	ListAppend(lst, encodeI64(1))
	ListAppend(lst, encodeI64(2))
	wrapped := encodeTagged(taggedValue{kind: tagList, h: lst})
	assert.Equal(t, "[1, 2]", Stringify(wrapped))

	m := NewMap()
	MapSet(m, "a", encodeI64(1))
	wrappedMap := encodeTagged(taggedValue{kind: tagMap, h: m})
	assert.Equal(t, "{a: 1}", Stringify(wrappedMap))
}
