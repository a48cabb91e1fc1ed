package main

import "C"

import "github.com/Ottrlang/otterlang/internal/runtimestd"

//export otter_time_now
func otter_time_now() C.uint64_t { return C.uint64_t(runtimestd.Now()) }

//export otter_time_sleep
func otter_time_sleep(ms C.int64_t) { runtimestd.Sleep(int64(ms)) }

//export otter_time_since
func otter_time_since(handle C.uint64_t) C.int64_t {
	return C.int64_t(runtimestd.Since(uint64(handle)))
}

//export otter_time_format
func otter_time_format(handle C.uint64_t, layout *C.char) *C.char {
	return C.CString(runtimestd.Format(uint64(handle), C.GoString(layout)))
}

//export otter_time_parse
func otter_time_parse(layout, value *C.char) C.uint64_t {
	handle, _ := runtimestd.Parse(C.GoString(layout), C.GoString(value))
	return C.uint64_t(handle)
}

//export otter_time_after
func otter_time_after(handle C.uint64_t, ms C.int64_t) C.uint64_t {
	return C.uint64_t(runtimestd.After(uint64(handle), int64(ms)))
}
