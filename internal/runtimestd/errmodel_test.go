package runtimestd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTry_SuccessCarriesResultAndNoError(t *testing.T) {
	h := Try(func() int64 { return encodeI64(7) })
	assert.Equal(t, int64(7), DecodeAsI64(TryResult(h)))
	assert.Equal(t, uint64(0), TryError(h))
}

func TestTry_PanicIsRecoveredIntoAnErrorHandle(t *testing.T) {
	h := Try(func() int64 {
		Panic("boom")
		return encodeI64(0) // unreachable
	})

	assert.Equal(t, tagUnit, taggedOf(TryResult(h)).kind)

	errH := TryError(h)
	assert.NotZero(t, errH)
	assert.Equal(t, "boom", ErrorMessage(errH))
}

func TestTry_NativePanicIsAlsoRecovered(t *testing.T) {
	h := Try(func() int64 {
		var lst []int
		_ = lst[0] // index out of range, not an Otter Panic
		return encodeI64(0)
	})

	assert.NotZero(t, TryError(h))
}

func TestRecover_ReturnsMessageOnceThenClearsIt(t *testing.T) {
	h := Try(func() int64 {
		Panic("only once")
		return encodeI64(0)
	})

	assert.Equal(t, "only once", Recover(h))
	assert.Equal(t, "", Recover(h))
}

func TestRecover_OnSuccessfulTryIsEmpty(t *testing.T) {
	h := Try(func() int64 { return encodeI64(1) })
	assert.Equal(t, "", Recover(h))
}

func TestErrorMessage_UnknownHandleIsEmpty(t *testing.T) {
	assert.Equal(t, "", ErrorMessage(999999))
}

func TestTryResultAndError_UnknownHandle(t *testing.T) {
	assert.Equal(t, tagUnit, taggedOf(TryResult(999999)).kind)
	assert.Equal(t, uint64(0), TryError(999999))
}
