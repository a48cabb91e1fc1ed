package runtimestd

import "fmt"

var errorTable = newHandleTable[string]()

// panicValue carries a panic message through Go's native panic/recover so
// Panic/Try can use the "standard stack-unwinding mechanism" spec.md §7
// calls for directly, instead of reimplementing unwinding by hand.
type panicValue struct{ message string }

// Panic implements panic: it never returns, the same way the teacher's
// runtime aborts the calling task with the caller's message (spec.md §7).
func Panic(message string) {
	panic(panicValue{message: message})
}

// tryOutcome is one completed Try call: either a tagged result or an error
// handle, never both.
type tryOutcome struct {
	ok     bool
	result int64
	errH   uint64
}

var tryTable = newHandleTable[*tryOutcome]()

// Try implements try: it invokes callback and, if callback panics (via Panic
// or a runtime fault), recovers and records the message as an error handle
// instead of letting the panic escape across the FFI boundary. callback must
// return an already-tagged value (the same convention __otter_iter_next_*
// uses), which Try passes through unchanged on success.
func Try(callback func() int64) uint64 {
	outcome := &tryOutcome{}
	func() {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			outcome.ok = false
			if pv, ok := r.(panicValue); ok {
				outcome.errH = errorTable.alloc(pv.message)
			} else {
				outcome.errH = errorTable.alloc(fmt.Sprint(r))
			}
		}()
		outcome.result = callback()
		outcome.ok = true
	}()
	return tryTable.alloc(outcome)
}

// TryResult implements try.result: the tagged return value on success, or an
// encoded Unit on failure.
func TryResult(handle uint64) int64 {
	o, ok := tryTable.get(handle)
	if !ok || !o.ok {
		return encodeTagged(taggedValue{kind: tagUnit})
	}
	return o.result
}

// TryError implements try.error: the error handle on failure, or 0 on
// success (0 is never a valid allocated handle — handleTable ids start at 1).
func TryError(handle uint64) uint64 {
	o, ok := tryTable.get(handle)
	if !ok || o.ok {
		return 0
	}
	return o.errH
}

// ErrorMessage implements error.message.
func ErrorMessage(handle uint64) string {
	msg, ok := errorTable.get(handle)
	if !ok {
		return ""
	}
	return msg
}

// Recover implements recover: given a Try handle, it returns the captured
// message (clearing it, so a second call reports an empty string) the same
// way Go's recover only returns a non-nil value once per panic. Outside of a
// Try, there is no live panic for a bare recover to observe — that
// asymmetry with Go's language-level recover() is deliberate: this runtime
// only exposes recovery at FFI call boundaries (see DESIGN.md).
func Recover(tryHandle uint64) string {
	o, ok := tryTable.get(tryHandle)
	if !ok || o.ok || o.errH == 0 {
		return ""
	}
	msg := ErrorMessage(o.errH)
	errorTable.release(o.errH)
	o.errH = 0
	return msg
}
