package http

import (
	"strconv"

	"github.com/indigo-web/minihttp/http/headers"
	"github.com/indigo-web/minihttp/http/mime"
	"github.com/indigo-web/minihttp/http/proto"
	"github.com/indigo-web/minihttp/http/status"
	"github.com/indigo-web/utils/uf"
)

// at most Content-Type, Content-Encoding and Content-Length are set by the handlers
const preallocRespHeaders = 3

// Fields exposes everything a response consists of. It is used by the serializer.
type Fields struct {
	Proto   proto.Proto
	Code    status.Code
	Headers []headers.Header
	// Body is nil if the response has no body at all.
	Body []byte
}

type Response struct {
	fields Fields
}

// NewResponse returns a new instance of the Response object with status code set to
// 200 OK, no headers and no body.
func NewResponse() *Response {
	return &Response{
		fields: Fields{
			Proto:   proto.HTTP11,
			Code:    status.OK,
			Headers: make([]headers.Header, 0, preallocRespHeaders),
		},
	}
}

// Code sets a Response code.
func (r *Response) Code(code status.Code) *Response {
	r.fields.Code = code
	return r
}

// Header appends the header. Headers are rendered exactly in the order they were
// added, duplicates included.
func (r *Response) Header(key, value string) *Response {
	r.fields.Headers = append(r.fields.Headers, headers.Header{
		Key:   key,
		Value: value,
	})

	return r
}

// ContentType is a shorthand for the Content-Type header.
func (r *Response) ContentType(value mime.MIME) *Response {
	return r.Header(headers.ContentType, value)
}

// ContentLength sets the Content-Length header to the length of the current body.
// As the header is rendered in place, it must be called after the body is set.
func (r *Response) ContentLength() *Response {
	return r.Header(headers.ContentLength, strconv.Itoa(len(r.fields.Body)))
}

// String sets the response's body to the passed string.
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response's body to passed slice WITHOUT COPYING. Changing
// the passed slice later will affect the response by itself. Passing an empty
// non-nil slice results in a response with an empty body, which is on the wire
// indistinguishable from no body.
func (r *Response) Bytes(body []byte) *Response {
	if body == nil {
		body = []byte{}
	}

	r.fields.Body = body
	return r
}

// Reveal returns the response fields. The returned value shares the headers and
// the body with the response.
func (r *Response) Reveal() Fields {
	return r.fields
}
