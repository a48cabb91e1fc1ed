package main

/*
#include <stdint.h>
*/
import "C"

import "github.com/Ottrlang/otterlang/internal/runtimestd"

// This file covers the compiler-internal __otter_* symbols
// internal/codegen/iter.go and expr.go forward-declare and call directly,
// bypassing the registry entirely — every generated program needs these to
// link, regardless of whether it touches the user-facing list.*/map.*
// surface below.

//export __otter_range_i64
func __otter_range_i64(start, end C.int64_t) C.uint64_t {
	return C.uint64_t(runtimestd.RangeI64(int64(start), int64(end)))
}

//export __otter_range_f64
func __otter_range_f64(start, end C.double) C.uint64_t {
	return C.uint64_t(runtimestd.RangeF64(float64(start), float64(end)))
}

//export __otter_iter_list
func __otter_iter_list(handle C.uint64_t) C.uint64_t {
	return C.uint64_t(runtimestd.IterList(uint64(handle)))
}

// __otter_iter_string receives the raw C string pointer directly (not a
// handle id) — internal/codegen/iter.go declares the source expression as
// OtterHandle but passes a bare `const char*` through the implicit
// pointer-to-pointer conversion, so the iterable string never goes through a
// handle table.
//
//export __otter_iter_string
func __otter_iter_string(s *C.char) C.uint64_t {
	if s == nil {
		return C.uint64_t(runtimestd.IterString(""))
	}
	return C.uint64_t(runtimestd.IterString(C.GoString(s)))
}

//export __otter_iter_map
func __otter_iter_map(handle C.uint64_t) C.uint64_t {
	return C.uint64_t(runtimestd.IterMap(uint64(handle)))
}

//export __otter_iter_has_next_list
func __otter_iter_has_next_list(handle C.uint64_t) C.int32_t {
	return boolToC(runtimestd.IterHasNext(uint64(handle)))
}

//export __otter_iter_has_next_string
func __otter_iter_has_next_string(handle C.uint64_t) C.int32_t {
	return boolToC(runtimestd.IterHasNext(uint64(handle)))
}

//export __otter_iter_has_next_map
func __otter_iter_has_next_map(handle C.uint64_t) C.int32_t {
	return boolToC(runtimestd.IterHasNext(uint64(handle)))
}

//export __otter_iter_next_list
func __otter_iter_next_list(handle C.uint64_t) C.int64_t {
	return C.int64_t(runtimestd.IterNext(uint64(handle)))
}

//export __otter_iter_next_string
func __otter_iter_next_string(handle C.uint64_t) C.int64_t {
	return C.int64_t(runtimestd.IterNext(uint64(handle)))
}

//export __otter_iter_next_map
func __otter_iter_next_map(handle C.uint64_t) C.int64_t {
	return C.int64_t(runtimestd.IterNext(uint64(handle)))
}

//export __otter_iter_free_list
func __otter_iter_free_list(handle C.uint64_t) { runtimestd.IterFree(uint64(handle)) }

//export __otter_iter_free_string
func __otter_iter_free_string(handle C.uint64_t) { runtimestd.IterFree(uint64(handle)) }

//export __otter_iter_free_map
func __otter_iter_free_map(handle C.uint64_t) { runtimestd.IterFree(uint64(handle)) }

//export __otter_decode_value_as_bool
func __otter_decode_value_as_bool(tagged C.int64_t) C.int32_t {
	return boolToC(runtimestd.DecodeAsBool(int64(tagged)))
}

//export __otter_decode_value_as_i64
func __otter_decode_value_as_i64(tagged C.int64_t) C.int64_t {
	return C.int64_t(runtimestd.DecodeAsI64(int64(tagged)))
}

//export __otter_decode_value_as_f64
func __otter_decode_value_as_f64(tagged C.int64_t) C.double {
	return C.double(runtimestd.DecodeAsF64(int64(tagged)))
}

//export __otter_decode_value_as_string
func __otter_decode_value_as_string(tagged C.int64_t) *C.char {
	return C.CString(runtimestd.DecodeAsString(int64(tagged)))
}

//export __otter_decode_value_as_handle
func __otter_decode_value_as_handle(tagged C.int64_t) C.uint64_t {
	return C.uint64_t(runtimestd.DecodeAsHandle(int64(tagged)))
}

//export __otter_struct_get_field
func __otter_struct_get_field(handle C.uint64_t, field *C.char) C.int64_t {
	return C.int64_t(runtimestd.StructGetField(uint64(handle), C.GoString(field)))
}

// otter_list_new..otter_enumerate_list back the list.*/map.*/len/cap/
// append<list>/delete<map>/range<…>/enumerate<list> registry surface
// (spec.md §4.7), callable explicitly from OtterLang source.

//export otter_list_new
func otter_list_new() C.uint64_t { return C.uint64_t(runtimestd.NewList()) }

//export otter_list_get
func otter_list_get(handle C.uint64_t, index C.int64_t) C.int64_t {
	return C.int64_t(runtimestd.ListGet(uint64(handle), int64(index)))
}

//export otter_map_new
func otter_map_new() C.uint64_t { return C.uint64_t(runtimestd.NewMap()) }

//export otter_map_get
func otter_map_get(handle C.uint64_t, key *C.char) C.int64_t {
	return C.int64_t(runtimestd.MapGet(uint64(handle), C.GoString(key)))
}

//export otter_map_set
func otter_map_set(handle C.uint64_t, key *C.char, tagged C.int64_t) {
	runtimestd.MapSet(uint64(handle), C.GoString(key), int64(tagged))
}

//export otter_len
func otter_len(handle C.uint64_t) C.int64_t {
	return C.int64_t(runtimestd.Len(uint64(handle)))
}

//export otter_cap
func otter_cap(handle C.uint64_t) C.int64_t {
	return C.int64_t(runtimestd.ListCap(uint64(handle)))
}

//export otter_append_list
func otter_append_list(handle C.uint64_t, tagged C.int64_t) C.int64_t {
	return C.int64_t(runtimestd.ListAppend(uint64(handle), int64(tagged)))
}

//export otter_delete_map
func otter_delete_map(handle C.uint64_t, key *C.char) {
	runtimestd.MapDelete(uint64(handle), C.GoString(key))
}

//export otter_range_int
func otter_range_int(start, end C.int64_t) C.uint64_t {
	return C.uint64_t(runtimestd.RangeI64(int64(start), int64(end)))
}

//export otter_range_float
func otter_range_float(start, end C.double) C.uint64_t {
	return C.uint64_t(runtimestd.RangeF64(float64(start), float64(end)))
}

//export otter_enumerate_list
func otter_enumerate_list(handle C.uint64_t) C.uint64_t {
	return C.uint64_t(runtimestd.EnumerateList(uint64(handle)))
}
