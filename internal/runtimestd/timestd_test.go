package runtimestd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowSinceAfter(t *testing.T) {
	h := Now()
	time.Sleep(5 * time.Millisecond)
	assert.GreaterOrEqual(t, Since(h), int64(0))

	later := After(h, 1000)
	assert.GreaterOrEqual(t, Since(later), int64(-1000))
}

func TestFormatAndParse_RoundTrip(t *testing.T) {
	const layout = "2006-01-02"
	h, ok := Parse(layout, "2026-01-15")
	require.True(t, ok)
	assert.Equal(t, "2026-01-15", Format(h, layout))
}

func TestParse_MalformedReportsFailure(t *testing.T) {
	_, ok := Parse("2006-01-02", "not-a-date")
	assert.False(t, ok)
}

func TestSince_UnknownHandleIsZero(t *testing.T) {
	assert.Equal(t, int64(0), Since(999999))
}

func TestFormat_UnknownHandleIsEmpty(t *testing.T) {
	assert.Equal(t, "", Format(999999, "2006-01-02"))
}
