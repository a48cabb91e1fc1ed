package runtimestd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMath_Wrappers(t *testing.T) {
	assert.InDelta(t, 3.0, Sqrt(9), 0.0001)
	assert.InDelta(t, 8.0, Pow(2, 3), 0.0001)
	assert.InDelta(t, 0.0, Sin(0), 0.0001)
	assert.InDelta(t, 1.0, Cos(0), 0.0001)
}
