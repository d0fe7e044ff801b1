package http1

import (
	"io"
	"strconv"

	"github.com/indigo-web/minihttp/http"
	"github.com/indigo-web/minihttp/http/headers"
	"github.com/indigo-web/minihttp/http/status"
)

type Serializer struct {
	buff []byte
}

func NewSerializer(buff []byte) *Serializer {
	return &Serializer{
		buff: buff[:0],
	}
}

// Render serializes the response into the internal buffer and returns it. The returned
// slice is valid until the next call.
func (s *Serializer) Render(response *http.Response) []byte {
	s.buff = s.buff[:0]
	fields := response.Reveal()

	s.buff = append(s.buff, fields.Proto.String()...)
	s.sp()
	s.renderStatusLine(fields.Code)
	s.crlf()

	for _, header := range fields.Headers {
		s.renderHeader(header)
	}

	s.crlf()
	s.buff = append(s.buff, fields.Body...)

	return s.buff
}

// Write renders the response and writes it at once.
func (s *Serializer) Write(response *http.Response, w io.Writer) error {
	_, err := w.Write(s.Render(response))
	return err
}

func (s *Serializer) renderStatusLine(code status.Code) {
	if line := status.Line(code); len(line) > 0 {
		s.buff = append(s.buff, line...)
		return
	}

	// unknown code, so there's no reason phrase for it
	s.buff = strconv.AppendUint(s.buff, uint64(code), 10)
	s.sp()
}

func (s *Serializer) renderHeader(header headers.Header) {
	s.buff = append(s.buff, header.Key...)
	s.buff = append(s.buff, ':', ' ')
	s.buff = append(s.buff, header.Value...)
	s.crlf()
}

func (s *Serializer) sp() {
	s.buff = append(s.buff, ' ')
}

func (s *Serializer) crlf() {
	s.buff = append(s.buff, '\r', '\n')
}
