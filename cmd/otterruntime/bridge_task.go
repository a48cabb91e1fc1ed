package main

/*
#include <stdint.h>

typedef int64_t (*OtterTaskFn)(void);

static int64_t otter_invoke_task_fn(OtterTaskFn fn) {
    return fn();
}
*/
import "C"

import (
	"github.com/Ottrlang/otterlang/internal/runtimestd"
)

// __otter_task_spawn and __otter_task_join back the language-level spawn/
// await expressions internal/codegen/task.go lowers directly to (restricted
// there to zero-argument, plain-named function targets).

//export __otter_task_spawn
func __otter_task_spawn(fn C.OtterTaskFn) C.int64_t {
	handle := runtimestd.SpawnTask(func() {
		C.otter_invoke_task_fn(fn)
	})
	return C.int64_t(handle)
}

//export __otter_task_join
func __otter_task_join(handle C.int64_t) C.int64_t {
	runtimestd.JoinTask(uint64(handle))
	return 0
}

// otter_task_spawn_fn..otter_task_close back the task.* registry surface
// (spec.md §4.7's Tasks row), callable explicitly from OtterLang source via
// the same callback-pointer convention as __otter_task_spawn.

//export otter_task_spawn_fn
func otter_task_spawn_fn(fn C.OtterTaskFn) C.uint64_t {
	handle := runtimestd.SpawnTask(func() {
		C.otter_invoke_task_fn(fn)
	})
	return C.uint64_t(handle)
}

//export otter_task_join_fn
func otter_task_join_fn(handle C.uint64_t) {
	runtimestd.JoinTask(uint64(handle))
}

//export otter_task_detach
func otter_task_detach(handle C.uint64_t) {
	runtimestd.DetachTask(uint64(handle))
}

//export otter_task_sleep
func otter_task_sleep(ms C.int64_t) {
	runtimestd.SleepTask(int64(ms))
}

//export otter_task_channel_string
func otter_task_channel_string() C.uint64_t {
	return C.uint64_t(runtimestd.NewStringChannel())
}

//export otter_task_channel_int
func otter_task_channel_int() C.uint64_t {
	return C.uint64_t(runtimestd.NewIntChannel())
}

//export otter_task_channel_float
func otter_task_channel_float() C.uint64_t {
	return C.uint64_t(runtimestd.NewFloatChannel())
}

//export otter_task_send_string
func otter_task_send_string(handle C.uint64_t, value *C.char) C.int32_t {
	ok := runtimestd.SendString(uint64(handle), C.GoString(value))
	return boolToC(ok)
}

//export otter_task_send_int
func otter_task_send_int(handle C.uint64_t, value C.int64_t) C.int32_t {
	return boolToC(runtimestd.SendInt(uint64(handle), int64(value)))
}

//export otter_task_send_float
func otter_task_send_float(handle C.uint64_t, value C.double) C.int32_t {
	return boolToC(runtimestd.SendFloat(uint64(handle), float64(value)))
}

//export otter_task_recv_string
func otter_task_recv_string(handle C.uint64_t) *C.char {
	v, ok := runtimestd.RecvString(uint64(handle))
	if !ok {
		return nil
	}
	return C.CString(v)
}

//export otter_task_recv_int
func otter_task_recv_int(handle C.uint64_t) C.int64_t {
	v, _ := runtimestd.RecvInt(uint64(handle))
	return C.int64_t(v)
}

//export otter_task_recv_float
func otter_task_recv_float(handle C.uint64_t) C.double {
	v, _ := runtimestd.RecvFloat(uint64(handle))
	return C.double(v)
}

//export otter_task_close
func otter_task_close(handle C.uint64_t) {
	runtimestd.CloseChannel(uint64(handle))
}

func boolToC(b bool) C.int32_t {
	if b {
		return 1
	}
	return 0
}
