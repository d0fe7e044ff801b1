package http1

import (
	"strconv"
	"strings"

	"github.com/indigo-web/minihttp/http"
	"github.com/indigo-web/minihttp/http/headers"
	"github.com/indigo-web/minihttp/http/method"
	"github.com/indigo-web/minihttp/http/proto"
)

// HeaderScan defines what happens when a header line is not recognized.
type HeaderScan uint8

const (
	// FullScan skips unrecognized header lines and looks at the rest.
	FullScan HeaderScan = iota
	// StopAtUnknown stops scanning at the first unrecognized header line. Recognized
	// headers following it are lost.
	StopAtUnknown
)

const crlf = "\r\n"

// Decode parses the headers section into a request. It never fails: missing request
// line tokens default to GET, an empty path and HTTP/1.1 respectively.
//
// Header lines are recognized by case-sensitive prefix, checked in the fixed order
// Host, User-Agent, Content-Length, Accept-Encoding. The value is everything after the
// first ": ", or the empty string if there's no such separator. A Content-Length that
// isn't an unsigned integer is treated as 0. The body is not attached.
func Decode(text string, scan HeaderScan) *http.Request {
	requestLine, rest, _ := strings.Cut(text, crlf)
	tokens := strings.Fields(requestLine)

	request := &http.Request{
		Method: method.Parse(token(tokens, 0)),
		Path:   token(tokens, 1),
		Proto:  proto.Parse(token(tokens, 2)),
	}

	for len(rest) > 0 {
		var line string
		line, rest, _ = strings.Cut(rest, crlf)

		if !decodeHeader(&request.Headers, line) && scan == StopAtUnknown {
			break
		}
	}

	return request
}

func decodeHeader(hdrs *headers.Headers, line string) (recognized bool) {
	switch {
	case strings.HasPrefix(line, headers.Host):
		hdrs.Host = headers.Some(value(line))
	case strings.HasPrefix(line, headers.UserAgent):
		hdrs.UserAgent = headers.Some(value(line))
	case strings.HasPrefix(line, headers.ContentLength):
		length, err := strconv.ParseUint(value(line), 10, 64)
		if err != nil {
			length = 0
		}

		hdrs.ContentLength = headers.Some(length)
	case strings.HasPrefix(line, headers.AcceptEncoding):
		hdrs.ContentEncoding = headers.Some(value(line))
	default:
		return false
	}

	return true
}

func value(line string) string {
	_, v, _ := strings.Cut(line, ": ")
	return v
}

func token(tokens []string, n int) string {
	if n < len(tokens) {
		return tokens[n]
	}

	return ""
}
