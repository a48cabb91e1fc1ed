package runtimestd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuntimeIntrospection_ReturnsPlausibleValues(t *testing.T) {
	assert.Greater(t, Gos(), int64(0))
	assert.Greater(t, CPUCount(), int64(0))
	assert.GreaterOrEqual(t, Memory(), int64(0))
	assert.Equal(t, Version, RuntimeVersionString())
	assert.Contains(t, Stats(), "goroutines=")

	// Must not panic; the runtime keeps operating afterward.
	CollectGarbage()
	assert.Greater(t, CPUCount(), int64(0))
}
