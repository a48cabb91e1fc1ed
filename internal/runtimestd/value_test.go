package runtimestd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeAsBool_AcrossKinds(t *testing.T) {
	assert.True(t, DecodeAsBool(encodeBool(true)))
	assert.False(t, DecodeAsBool(encodeBool(false)))
	assert.True(t, DecodeAsBool(encodeI64(7)))
	assert.False(t, DecodeAsBool(encodeI64(0)))
	assert.True(t, DecodeAsBool(encodeF64(1.5)))
	assert.False(t, DecodeAsBool(encodeF64(0)))
	assert.False(t, DecodeAsBool(encodeStr("true")))
}

func TestDecodeAsI64_AcrossKinds(t *testing.T) {
	assert.Equal(t, int64(42), DecodeAsI64(encodeI64(42)))
	assert.Equal(t, int64(1), DecodeAsI64(encodeBool(true)))
	assert.Equal(t, int64(3), DecodeAsI64(encodeF64(3.9)))
	assert.Equal(t, int64(9), DecodeAsI64(encodeHandle(9)))
	assert.Equal(t, int64(0), DecodeAsI64(encodeStr("nope")))
}

func TestDecodeAsF64_AcrossKinds(t *testing.T) {
	assert.InDelta(t, 2.5, DecodeAsF64(encodeF64(2.5)), 0.0001)
	assert.InDelta(t, 4.0, DecodeAsF64(encodeI64(4)), 0.0001)
	assert.InDelta(t, 1.0, DecodeAsF64(encodeBool(true)), 0.0001)
	assert.InDelta(t, 0.0, DecodeAsF64(encodeStr("x")), 0.0001)
}

func TestDecodeAsString_OnlyAcceptsStrKind(t *testing.T) {
	assert.Equal(t, "hello", DecodeAsString(encodeStr("hello")))
	assert.Equal(t, "", DecodeAsString(encodeI64(1)))
}

func TestDecodeAsHandle_AcceptsHandleListAndMapKinds(t *testing.T) {
	assert.Equal(t, uint64(11), DecodeAsHandle(encodeHandle(11)))

	listHandle := NewList()
	wrapped := encodeTagged(taggedValue{kind: tagList, h: listHandle})
	assert.Equal(t, listHandle, DecodeAsHandle(wrapped))

	mapHandle := NewMap()
	wrappedMap := encodeTagged(taggedValue{kind: tagMap, h: mapHandle})
	assert.Equal(t, mapHandle, DecodeAsHandle(wrappedMap))

	assert.Equal(t, uint64(0), DecodeAsHandle(encodeStr("not a handle")))
}

func TestTaggedOf_UnknownHandleIsUnit(t *testing.T) {
	v := taggedOf(int64(^uint64(0) >> 1))
	assert.Equal(t, tagUnit, v.kind)
}
