package runtimestd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONEncode_Scalars(t *testing.T) {
	out, ok := JSONEncode(encodeI64(42))
	require.True(t, ok)
	assert.Equal(t, "42", out)

	out, ok = JSONEncode(encodeStr("hi"))
	require.True(t, ok)
	assert.Equal(t, `"hi"`, out)

	out, ok = JSONEncode(encodeBool(true))
	require.True(t, ok)
	assert.Equal(t, "true", out)
}

func TestJSONEncode_ListAndMap(t *testing.T) {
	lst := NewList()
	ListAppend(lst, encodeI64(1))
	ListAppend(lst, encodeI64(2))
	wrapped := encodeTagged(taggedValue{kind: tagList, h: lst})

	out, ok := JSONEncode(wrapped)
	require.True(t, ok)
	assert.Equal(t, "[1,2]", out)

	m := NewMap()
	MapSet(m, "a", encodeI64(1))
	wrappedMap := encodeTagged(taggedValue{kind: tagMap, h: m})

	out, ok = JSONEncode(wrappedMap)
	require.True(t, ok)
	assert.Equal(t, `{"a":1}`, out)
}

func TestJSONDecode_RoundTripsThroughEncode(t *testing.T) {
	tagged, ok := JSONDecode(`{"a": 1, "b": [1, 2, 3]}`)
	require.True(t, ok)

	h := DecodeAsHandle(tagged)
	m, found := mapTable.get(h)
	require.True(t, found)
	assert.Equal(t, int64(1), DecodeAsI64(m.values["a"]))

	listH := DecodeAsHandle(m.values["b"])
	assert.Equal(t, int64(3), ListLen(listH))

	out, ok := JSONEncode(tagged)
	require.True(t, ok)
	assert.JSONEq(t, `{"a": 1, "b": [1, 2, 3]}`, out)
}

func TestJSONDecode_MalformedReportsFailure(t *testing.T) {
	_, ok := JSONDecode("{not json")
	assert.False(t, ok)
}

func TestJSONPretty_Indents(t *testing.T) {
	out, ok := JSONPretty(`{"a":1}`)
	require.True(t, ok)
	assert.Contains(t, out, "\n")
}

func TestJSONPretty_MalformedReportsFailure(t *testing.T) {
	_, ok := JSONPretty("not json")
	assert.False(t, ok)
}

func TestJSONValidate(t *testing.T) {
	assert.True(t, JSONValidate(`{"a":1}`))
	assert.False(t, JSONValidate("not json"))
}
