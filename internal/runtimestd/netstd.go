package runtimestd

import "fmt"

// netstd implements spec.md §4.7's net.* surface as canned, handle-lifecycle-
// only stubs: spec.md §9's Open Question notes the source's own network
// entries "appear to return stub payloads" and leaves real network semantics
// undefined beyond handle lifecycle. This runtime keeps that exact shape
// rather than inventing real socket/HTTP behavior the spec never committed
// to (see DESIGN.md's Open Question decisions).

type netConn struct {
	addr string
}

type netResponse struct {
	status int64
	body   string
}

var (
	netConns     = newHandleTable[*netConn]()
	netResponses = newHandleTable[*netResponse]()
)

// NetListen implements net.listen: a connection handle bound to addr, no
// actual socket is opened.
func NetListen(addr string) uint64 {
	return netConns.alloc(&netConn{addr: addr})
}

// NetDial implements net.dial.
func NetDial(addr string) uint64 {
	return netConns.alloc(&netConn{addr: addr})
}

// NetSend implements net.send: always reports success against a live handle.
func NetSend(handle uint64, _ string) bool {
	return netConns.has(handle)
}

// NetRecv implements net.recv: a canned payload naming the connection's
// address, matching the stub semantics spec.md §9 documents.
func NetRecv(handle uint64) (string, bool) {
	c, ok := netConns.get(handle)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("Data from %s", c.addr), true
}

// NetClose implements net.close.
func NetClose(handle uint64) {
	netConns.release(handle)
}

// NetHTTPGet implements net.http_get: a canned 200 response carrying
// "Response from <url>".
func NetHTTPGet(url string) uint64 {
	return netResponses.alloc(&netResponse{status: 200, body: fmt.Sprintf("Response from %s", url)})
}

// NetHTTPPost implements net.http_post.
func NetHTTPPost(url string, _ string) uint64 {
	return netResponses.alloc(&netResponse{status: 200, body: fmt.Sprintf("Response from %s", url)})
}

// NetResponseStatus implements net.response.status.
func NetResponseStatus(handle uint64) int64 {
	r, ok := netResponses.get(handle)
	if !ok {
		return 0
	}
	return r.status
}

// NetResponseBody implements net.response.body.
func NetResponseBody(handle uint64) string {
	r, ok := netResponses.get(handle)
	if !ok {
		return ""
	}
	return r.body
}
