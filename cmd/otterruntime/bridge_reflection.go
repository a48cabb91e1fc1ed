package main

import "C"

import "github.com/Ottrlang/otterlang/internal/runtimestd"

//export otter_type_of
func otter_type_of(tagged C.int64_t) *C.char {
	return C.CString(runtimestd.TypeOf(int64(tagged)))
}

//export otter_fields
func otter_fields(structHandle C.uint64_t) C.uint64_t {
	return C.uint64_t(runtimestd.Fields(uint64(structHandle)))
}

//export otter_stringify
func otter_stringify(tagged C.int64_t) *C.char {
	return C.CString(runtimestd.Stringify(int64(tagged)))
}
