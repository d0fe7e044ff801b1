package http

import (
	"unicode/utf8"

	"github.com/indigo-web/minihttp/http/headers"
	"github.com/indigo-web/minihttp/http/method"
	"github.com/indigo-web/minihttp/http/proto"
	"github.com/indigo-web/utils/uf"
)

// Request represents an HTTP request. It is created once per connection by the
// decoder and must not be mutated afterward.
type Request struct {
	// Method is an enum representing the request method.
	Method method.Method
	// Path is the raw request target including the leading slash. It isn't decoded
	// nor validated in any way.
	Path string
	// Proto is the protocol the request was made with. Always HTTP/1.1.
	Proto proto.Proto
	// Headers is the fixed set of recognized request headers.
	Headers headers.Headers
}

// NewRequest returns the default request: GET / HTTP/1.1 without any headers. This is
// what an empty or unreadable stream decodes into.
func NewRequest() *Request {
	return &Request{
		Method: method.GET,
		Path:   "/",
		Proto:  proto.HTTP11,
	}
}

// Body returns the raw body bytes. It's nil if no Content-Length was presented.
func (r *Request) Body() []byte {
	return r.Headers.RequestBody.Or(nil)
}

// BodyText returns the body as UTF-8 text. If the body isn't valid UTF-8, the empty
// string is returned instead.
func (r *Request) BodyText() string {
	body := r.Body()
	if !utf8.Valid(body) {
		return ""
	}

	return uf.B2S(body)
}
