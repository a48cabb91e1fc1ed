package main

import "C"

import "github.com/Ottrlang/otterlang/internal/runtimestd"

//export otter_net_listen
func otter_net_listen(addr *C.char) C.uint64_t {
	return C.uint64_t(runtimestd.NetListen(C.GoString(addr)))
}

//export otter_net_dial
func otter_net_dial(addr *C.char) C.uint64_t {
	return C.uint64_t(runtimestd.NetDial(C.GoString(addr)))
}

//export otter_net_send
func otter_net_send(handle C.uint64_t, data *C.char) C.int32_t {
	return boolToC(runtimestd.NetSend(uint64(handle), C.GoString(data)))
}

//export otter_net_recv
func otter_net_recv(handle C.uint64_t) *C.char {
	v, ok := runtimestd.NetRecv(uint64(handle))
	if !ok {
		return C.CString("")
	}
	return C.CString(v)
}

//export otter_net_close
func otter_net_close(handle C.uint64_t) { runtimestd.NetClose(uint64(handle)) }

//export otter_net_http_get
func otter_net_http_get(url *C.char) C.uint64_t {
	return C.uint64_t(runtimestd.NetHTTPGet(C.GoString(url)))
}

//export otter_net_http_post
func otter_net_http_post(url, body *C.char) C.uint64_t {
	return C.uint64_t(runtimestd.NetHTTPPost(C.GoString(url), C.GoString(body)))
}

//export otter_net_response_status
func otter_net_response_status(handle C.uint64_t) C.int64_t {
	return C.int64_t(runtimestd.NetResponseStatus(uint64(handle)))
}

//export otter_net_response_body
func otter_net_response_body(handle C.uint64_t) *C.char {
	return C.CString(runtimestd.NetResponseBody(uint64(handle)))
}
