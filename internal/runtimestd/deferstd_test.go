package runtimestd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunDeferred_RunsCallbacksLastInFirstOut(t *testing.T) {
	frame := frameDefers.alloc(nil)
	var order []int
	Defer(frame, func() { order = append(order, 1) })
	Defer(frame, func() { order = append(order, 2) })
	Defer(frame, func() { order = append(order, 3) })

	RunDeferred(frame)
	assert.Equal(t, []int{3, 2, 1}, order)

	// A frame only runs once; it is forgotten after RunDeferred.
	order = nil
	RunDeferred(frame)
	assert.Empty(t, order)
}

func TestRunDeferred_UnknownFrameIsHarmless(t *testing.T) {
	RunDeferred(999999)
}
