package main

import "C"

import "github.com/Ottrlang/otterlang/internal/runtimestd"

//export otter_json_encode
func otter_json_encode(tagged C.int64_t) *C.char {
	out, ok := runtimestd.JSONEncode(int64(tagged))
	if !ok {
		return C.CString("")
	}
	return C.CString(out)
}

//export otter_json_decode
func otter_json_decode(text *C.char) C.int64_t {
	v, ok := runtimestd.JSONDecode(C.GoString(text))
	if !ok {
		return 0
	}
	return C.int64_t(v)
}

//export otter_json_pretty
func otter_json_pretty(text *C.char) *C.char {
	out, ok := runtimestd.JSONPretty(C.GoString(text))
	if !ok {
		return C.CString("")
	}
	return C.CString(out)
}

//export otter_json_validate
func otter_json_validate(text *C.char) C.int32_t {
	return boolToC(runtimestd.JSONValidate(C.GoString(text)))
}
