package runtimestd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetListenDialSendRecvClose(t *testing.T) {
	h := NetListen("127.0.0.1:9000")
	require.True(t, NetSend(h, "payload"))

	body, ok := NetRecv(h)
	require.True(t, ok)
	assert.Contains(t, body, "127.0.0.1:9000")

	NetClose(h)
	assert.False(t, NetSend(h, "payload"))
	_, ok = NetRecv(h)
	assert.False(t, ok)
}

func TestNetDial_AllocatesIndependentHandle(t *testing.T) {
	a := NetDial("host-a")
	b := NetDial("host-b")
	assert.NotEqual(t, a, b)
}

func TestNetHTTP_CannedResponses(t *testing.T) {
	get := NetHTTPGet("https://example.test/resource")
	assert.Equal(t, int64(200), NetResponseStatus(get))
	assert.Contains(t, NetResponseBody(get), "https://example.test/resource")

	post := NetHTTPPost("https://example.test/resource", "body")
	assert.Equal(t, int64(200), NetResponseStatus(post))
}

func TestNetResponse_UnknownHandle(t *testing.T) {
	assert.Equal(t, int64(0), NetResponseStatus(999999))
	assert.Equal(t, "", NetResponseBody(999999))
}
