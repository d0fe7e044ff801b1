package http1

import (
	"testing"

	"github.com/indigo-web/minihttp/http"
	"github.com/indigo-web/minihttp/http/method"
	"github.com/indigo-web/minihttp/http/proto"
	"github.com/stretchr/testify/require"
)

type wantedRequest struct {
	Method          method.Method
	Path            string
	Host            string
	UserAgent       string
	ContentEncoding string
	ContentLength   uint64
	// Present lists which headers were seen, in order Host, User-Agent,
	// Accept-Encoding, Content-Length.
	Present [4]bool
}

func compareRequests(t *testing.T, wanted wantedRequest, actual *http.Request) {
	require.Equal(t, wanted.Method, actual.Method)
	require.Equal(t, wanted.Path, actual.Path)
	require.Equal(t, proto.HTTP11, actual.Proto)

	host, ok := actual.Headers.Host.Value()
	require.Equal(t, wanted.Present[0], ok, "Host presence")
	require.Equal(t, wanted.Host, host)

	agent, ok := actual.Headers.UserAgent.Value()
	require.Equal(t, wanted.Present[1], ok, "User-Agent presence")
	require.Equal(t, wanted.UserAgent, agent)

	encoding, ok := actual.Headers.ContentEncoding.Value()
	require.Equal(t, wanted.Present[2], ok, "Accept-Encoding presence")
	require.Equal(t, wanted.ContentEncoding, encoding)

	length, ok := actual.Headers.ContentLength.Value()
	require.Equal(t, wanted.Present[3], ok, "Content-Length presence")
	require.Equal(t, wanted.ContentLength, length)

	require.False(t, actual.Headers.RequestBody.IsSet())
}

func TestDecode(t *testing.T) {
	t.Run("request line only", func(t *testing.T) {
		request := Decode("GET / HTTP/1.1\r\n", FullScan)
		compareRequests(t, wantedRequest{
			Method: method.GET,
			Path:   "/",
		}, request)
	})

	t.Run("all recognized headers", func(t *testing.T) {
		text := "POST /files/test.txt HTTP/1.1\r\n" +
			"Host: localhost:4221\r\n" +
			"User-Agent: testclient/1.0\r\n" +
			"Accept-Encoding: gzip\r\n" +
			"Content-Length: 5\r\n"

		compareRequests(t, wantedRequest{
			Method:          method.POST,
			Path:            "/files/test.txt",
			Host:            "localhost:4221",
			UserAgent:       "testclient/1.0",
			ContentEncoding: "gzip",
			ContentLength:   5,
			Present:         [4]bool{true, true, true, true},
		}, Decode(text, FullScan))
	})

	t.Run("methods", func(t *testing.T) {
		for _, m := range method.List {
			request := Decode(m.String()+" /x HTTP/1.1\r\n", FullScan)
			require.Equal(t, m, request.Method)
		}

		require.Equal(t, method.GET, Decode("BREW /pot HTTP/1.1\r\n", FullScan).Method)
	})

	t.Run("missing tokens", func(t *testing.T) {
		compareRequests(t, wantedRequest{Method: method.POST}, Decode("POST\r\n", FullScan))
		compareRequests(t, wantedRequest{Method: method.PUT}, Decode("PUT", FullScan))
		compareRequests(t, wantedRequest{Method: method.GET, Path: "/a"}, Decode("GET /a\r\n", FullScan))
	})

	t.Run("empty text", func(t *testing.T) {
		compareRequests(t, wantedRequest{Method: method.GET}, Decode("", FullScan))
	})

	t.Run("extra whitespace in request line", func(t *testing.T) {
		request := Decode("DELETE   /files/a \t HTTP/1.0 trailing\r\n", FullScan)
		require.Equal(t, method.DELETE, request.Method)
		require.Equal(t, "/files/a", request.Path)
		require.Equal(t, proto.HTTP11, request.Proto)
	})

	t.Run("unrecognized headers are skipped", func(t *testing.T) {
		text := "GET /user-agent HTTP/1.1\r\n" +
			"Accept: */*\r\n" +
			"User-Agent: curl/8.0\r\n" +
			"Connection: close\r\n" +
			"Host: example.com\r\n"

		compareRequests(t, wantedRequest{
			Method:    method.GET,
			Path:      "/user-agent",
			Host:      "example.com",
			UserAgent: "curl/8.0",
			Present:   [4]bool{true, true, false, false},
		}, Decode(text, FullScan))
	})

	t.Run("legacy scan stops at unrecognized header", func(t *testing.T) {
		text := "GET /user-agent HTTP/1.1\r\n" +
			"Host: example.com\r\n" +
			"Accept: */*\r\n" +
			"User-Agent: curl/8.0\r\n"

		compareRequests(t, wantedRequest{
			Method:  method.GET,
			Path:    "/user-agent",
			Host:    "example.com",
			Present: [4]bool{true, false, false, false},
		}, Decode(text, StopAtUnknown))
	})

	t.Run("values", func(t *testing.T) {
		text := "GET / HTTP/1.1\r\n" +
			"Host:nospace\r\n" +
			"User-Agent: a: b\r\n" +
			"Content-Length: -1\r\n" +
			"Accept-Encoding: gzip, deflate\r\n"

		compareRequests(t, wantedRequest{
			Method:          method.GET,
			Path:            "/",
			Host:            "",
			UserAgent:       "a: b",
			ContentEncoding: "gzip, deflate",
			ContentLength:   0,
			Present:         [4]bool{true, true, true, true},
		}, Decode(text, FullScan))
	})

	t.Run("case-sensitive prefix", func(t *testing.T) {
		request := Decode("GET / HTTP/1.1\r\nuser-agent: lower\r\nHostname: x\r\n", FullScan)
		require.False(t, request.Headers.UserAgent.IsSet())
		// prefix matching: "Hostname" starts with "Host"
		require.Equal(t, "x", request.Headers.Host.Or("<none>"))
	})

	t.Run("later header overrides", func(t *testing.T) {
		request := Decode("GET / HTTP/1.1\r\nUser-Agent: first\r\nUser-Agent: second\r\n", FullScan)
		require.Equal(t, "second", request.Headers.UserAgent.Or(""))
	})
}
