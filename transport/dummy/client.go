package dummy

import (
	"io"
	"net"

	"github.com/indigo-web/minihttp/transport"
)

var _ transport.Client = new(CircularClient)

// CircularClient is a client that returns the pieces it was initialised with, one per
// read. By default, it starts over once all the pieces are consumed, which is useful
// for benchmarking. Everything written is collected into Written.
type CircularClient struct {
	Written         []byte
	data            [][]byte
	tmp             []byte
	pointer         int
	closed, oneTime bool
	err             error
}

func NewCircularClient(data ...[]byte) *CircularClient {
	return &CircularClient{
		data: data,
	}
}

func (c *CircularClient) Read() (data []byte, err error) {
	if c.closed {
		return nil, c.eof()
	}

	if len(c.tmp) > 0 {
		data, c.tmp = c.tmp, nil

		return data, nil
	}

	if c.pointer >= len(c.data) {
		if c.oneTime {
			c.closed = true
			return nil, c.eof()
		}

		c.pointer = 0
	}

	piece := c.data[c.pointer]
	c.pointer++

	return piece, nil
}

func (c *CircularClient) eof() error {
	if c.err != nil {
		return c.err
	}

	return io.EOF
}

func (c *CircularClient) Pushback(takeback []byte) {
	c.tmp = takeback
}

func (c *CircularClient) Write(p []byte) (int, error) {
	c.Written = append(c.Written, p...)
	return len(p), nil
}

func (*CircularClient) Remote() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 4221}
}

func (c *CircularClient) Close() error {
	c.closed = true
	return nil
}

// OneTime disables the looping: once the pieces are consumed, io.EOF is returned.
func (c *CircularClient) OneTime() *CircularClient {
	c.oneTime = true
	return c
}

// FailWith makes the client return the error instead of io.EOF once the pieces are
// consumed. Implies OneTime.
func (c *CircularClient) FailWith(err error) *CircularClient {
	c.err = err
	return c.OneTime()
}

// NewRequestClient splits the raw request into pieces of at most n bytes, mimicking
// the transport delivering it in multiple reads. n <= 0 delivers it at once.
func NewRequestClient(raw string, n int) *CircularClient {
	if n <= 0 {
		n = len(raw)
	}

	var pieces [][]byte
	for i := 0; i < len(raw); i += n {
		pieces = append(pieces, []byte(raw[i:min(i+n, len(raw))]))
	}

	return NewCircularClient(pieces...).OneTime()
}

type SinkholeWriter struct {
	Data []byte
}

func NewSinkholeWriter() *SinkholeWriter {
	return new(SinkholeWriter)
}

func (s *SinkholeWriter) Write(b []byte) (int, error) {
	s.Data = append(s.Data, b...)
	return len(b), nil
}

// FailingWriter refuses every write with the error.
type FailingWriter struct {
	Err error
}

func (f FailingWriter) Write([]byte) (int, error) {
	return 0, f.Err
}
