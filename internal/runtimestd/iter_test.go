package runtimestd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterList_WalksSnapshotInOrder(t *testing.T) {
	lst := NewList()
	ListAppend(lst, encodeI64(1))
	ListAppend(lst, encodeI64(2))
	ListAppend(lst, encodeI64(3))

	it := IterList(lst)
	var seen []int64
	for IterHasNext(it) {
		seen = append(seen, DecodeAsI64(IterNext(it)))
	}
	assert.Equal(t, []int64{1, 2, 3}, seen)

	// Exhausted iterators keep reporting no-next and Unit rather than
	// panicking or wrapping around.
	assert.False(t, IterHasNext(it))
	assert.Equal(t, tagUnit, taggedOf(IterNext(it)).kind)

	IterFree(it)
	assert.False(t, IterHasNext(it))
}

func TestIterList_SnapshotsAtCreationTime(t *testing.T) {
	lst := NewList()
	ListAppend(lst, encodeI64(1))

	it := IterList(lst)
	ListAppend(lst, encodeI64(2)) // appended after the iterator was taken

	var count int
	for IterHasNext(it) {
		IterNext(it)
		count++
	}
	assert.Equal(t, 1, count)
}

func TestIterString_WalksRunes(t *testing.T) {
	it := IterString("ab")
	assert.True(t, IterHasNext(it))
	assert.Equal(t, "a", DecodeAsString(IterNext(it)))
	assert.True(t, IterHasNext(it))
	assert.Equal(t, "b", DecodeAsString(IterNext(it)))
	assert.False(t, IterHasNext(it))
}

func TestIterMap_WalksKeyValuePairsInInsertionOrder(t *testing.T) {
	m := NewMap()
	MapSet(m, "first", encodeI64(1))
	MapSet(m, "second", encodeI64(2))

	it := IterMap(m)

	pair1 := DecodeAsHandle(IterNext(it))
	assert.Equal(t, "first", DecodeAsString(ListGet(pair1, 0)))
	assert.Equal(t, int64(1), DecodeAsI64(ListGet(pair1, 1)))

	pair2 := DecodeAsHandle(IterNext(it))
	assert.Equal(t, "second", DecodeAsString(ListGet(pair2, 0)))
	assert.Equal(t, int64(2), DecodeAsI64(ListGet(pair2, 1)))

	assert.False(t, IterHasNext(it))
}

func TestIterHasNextAndNext_UnknownHandleAreHarmless(t *testing.T) {
	const bogus = uint64(999999)
	assert.False(t, IterHasNext(bogus))
	assert.Equal(t, tagUnit, taggedOf(IterNext(bogus)).kind)
}
