package main

/*
#include <stdint.h>

typedef int64_t (*OtterTryFn)(void);
typedef void (*OtterDeferFn)(void);

static int64_t otter_invoke_try_fn(OtterTryFn fn) {
    return fn();
}

static void otter_invoke_defer_fn(OtterDeferFn fn) {
    fn();
}
*/
import "C"

import "github.com/Ottrlang/otterlang/internal/runtimestd"

//export otter_panic
func otter_panic(message *C.char) {
	runtimestd.Panic(C.GoString(message))
}

//export otter_try
func otter_try(fn C.OtterTryFn) C.uint64_t {
	handle := runtimestd.Try(func() int64 {
		return int64(C.otter_invoke_try_fn(fn))
	})
	return C.uint64_t(handle)
}

//export otter_try_result
func otter_try_result(handle C.uint64_t) C.int64_t {
	return C.int64_t(runtimestd.TryResult(uint64(handle)))
}

//export otter_try_error
func otter_try_error(handle C.uint64_t) C.uint64_t {
	return C.uint64_t(runtimestd.TryError(uint64(handle)))
}

//export otter_error_message
func otter_error_message(handle C.uint64_t) *C.char {
	return C.CString(runtimestd.ErrorMessage(uint64(handle)))
}

//export otter_recover
func otter_recover(tryHandle C.uint64_t) *C.char {
	return C.CString(runtimestd.Recover(uint64(tryHandle)))
}

//export otter_defer
func otter_defer(frame C.uint64_t, fn C.OtterDeferFn) {
	runtimestd.Defer(uint64(frame), func() {
		C.otter_invoke_defer_fn(fn)
	})
}
