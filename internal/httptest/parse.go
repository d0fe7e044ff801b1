// Package httptest contains a generic, independent from the server, HTTP/1.1 response
// parser. It is used to check that what is written on the wire is understood as intended.
package httptest

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/indigo-web/chunkedbody"
	"github.com/indigo-web/minihttp/http/headers"
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
)

type Response struct {
	Proto   string
	Code    int
	Status  string
	Headers []headers.Header
	Body    string
}

// Values returns all the values of the header. The key is case-insensitive.
func (r Response) Values(key string) (values []string) {
	for _, h := range r.Headers {
		if strcomp.EqualFold(h.Key, key) {
			values = append(values, h.Value)
		}
	}

	return values
}

// Value returns the first value of the header, or the empty string.
func (r Response) Value(key string) string {
	values := r.Values(key)
	if len(values) == 0 {
		return ""
	}

	return values[0]
}

// Has reports whether the header is presented at all.
func (r Response) Has(key string) bool {
	return len(r.Values(key)) > 0
}

func Parse(raw string) (response Response, err error) {
	var found bool

	response.Proto, raw, found = strings.Cut(raw, " ")
	if !found || len(raw) == 0 {
		return response, fmt.Errorf("bad response line: lacking code and status")
	}

	var code string
	code, raw, found = strings.Cut(raw, " ")
	response.Code, err = strconv.Atoi(code)
	if err != nil {
		return response, err
	}

	if !found || len(raw) == 0 {
		return response, fmt.Errorf("bad response line: lacking status")
	}

	response.Status, raw, found = strings.Cut(raw, "\r\n")
	if !found {
		return response, fmt.Errorf("bad response: no CRLF after the response line")
	}

	for {
		var headerLine string
		headerLine, raw, found = strings.Cut(raw, "\r\n")
		if !found {
			return response, fmt.Errorf("bad header line %q: no breaking CRLF", headerLine)
		}
		if len(headerLine) == 0 {
			break
		}

		key, value, err := parseHeaderLine(headerLine)
		if err != nil {
			return response, err
		}

		response.Headers = append(response.Headers, headers.Header{
			Key:   key,
			Value: value,
		})
	}

	response.Body, err = processBody(response, raw)

	return response, err
}

func parseHeaderLine(line string) (key, value string, err error) {
	var found bool
	key, value, found = strings.Cut(line, ": ")
	if !found {
		return "", "", fmt.Errorf("bad header %s: no value", line)
	}

	if len(key) == 0 {
		return "", "", fmt.Errorf("bad header %s: empty key", line)
	}

	return key, value, nil
}

func processBody(response Response, data string) (string, error) {
	if response.Value("connection") == "close" {
		return data, nil
	}

	te := response.Values("transfer-encoding")
	if len(te) > 0 {
		if len(te) != 1 || te[0] != "chunked" {
			return "", fmt.Errorf("httptest: cannot process encodings: %s", strings.Join(te, ","))
		}

		return processChunkedBody(data, response.Has("trailer"))
	}

	contentLengths := response.Values("content-length")
	switch len(contentLengths) {
	case 0:
		if len(data) == 0 {
			return "", nil
		}

		return "", fmt.Errorf("bad response: neither Transfer-Encoding or Content-Length are presented")
	case 1:
		length, err := strconv.Atoi(contentLengths[0])
		if err != nil {
			return "", err
		}

		return processPlainBody(data, length)
	default:
		return "", fmt.Errorf(
			"bad response: too many content-lengths: %s", strings.Join(contentLengths, ", "),
		)
	}
}

func processChunkedBody(data string, trailer bool) (string, error) {
	var buff []byte
	parser := chunkedbody.NewParser(chunkedbody.DefaultSettings())

	for len(data) > 0 {
		chunk, extra, err := parser.Parse(uf.S2B(data), trailer)
		buff = append(buff, chunk...)

		switch err {
		case nil:
		case io.EOF:
			return string(buff), nil
		default:
			return "", fmt.Errorf("bad response: bad chunked body: %s", err)
		}

		data = string(extra)
	}

	return "", fmt.Errorf("bad response: chunked body is not terminated")
}

func processPlainBody(data string, length int) (string, error) {
	switch {
	case len(data) > length:
		return "", fmt.Errorf("got extra body: %d bytes more than Content-Length", len(data)-length)
	case len(data) < length:
		return "", fmt.Errorf("body is %d bytes shorter than Content-Length", length-len(data))
	}

	return data, nil
}
