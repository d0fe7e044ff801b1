package http1

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/indigo-web/minihttp/http/status"
	"github.com/indigo-web/minihttp/transport"
	"github.com/indigo-web/utils/uf"
)

// bodyPrealloc caps the initial body buffer, so a huge declared Content-Length doesn't
// allocate anything before the bytes actually arrive.
const bodyPrealloc = 64 * 1024

var errHeadersTooLarge = errors.New("headers section is too large")

// Framer splits the byte stream of a single connection into the headers section and
// the body. It is not safe for concurrent use, as isn't the connection itself.
type Framer struct {
	client        transport.Client
	buff          []byte
	maxHeaderSize int
	strict        bool
	readErr       error
	// err is the reason the stream ended prematurely, if it did.
	err error
}

func NewFramer(client transport.Client, maxHeaderSize int, strict bool) *Framer {
	return &Framer{
		client:        client,
		maxHeaderSize: maxHeaderSize,
		strict:        strict,
	}
}

// Headers reads lines until an empty one (a sole CRLF) and returns everything before
// it, request line included. The empty line itself is consumed and excluded. Bytes
// received past it are pushed back into the client and will be returned by Body.
//
// If the stream ends (or the read fails, or the section exceeds the size limit) before
// the empty line, the permissive framer returns whatever was received and no error,
// while the strict one fails with status.ErrMalformedRequest.
func (f *Framer) Headers() (string, error) {
	var lineStart, scanned int

	for {
		if lf := bytes.IndexByte(f.buff[scanned:], '\n'); lf != -1 {
			lineEnd := scanned + lf + 1
			if lineStart > f.maxHeaderSize {
				return f.tooLarge()
			}

			if lineEnd-lineStart == 2 && f.buff[lineStart] == '\r' {
				if extra := f.buff[lineEnd:]; len(extra) > 0 {
					f.client.Pushback(extra)
				}

				return uf.B2S(f.buff[:lineStart]), nil
			}

			lineStart, scanned = lineEnd, lineEnd
			continue
		}

		scanned = len(f.buff)

		if len(f.buff) > f.maxHeaderSize {
			return f.tooLarge()
		}

		if f.readErr != nil {
			return f.interrupt(f.readErr)
		}

		// a read may deliver data along with an error. The data is processed first,
		// the error is reported only if it wasn't enough
		var data []byte
		data, f.readErr = f.client.Read()
		f.buff = append(f.buff, data...)
	}
}

func (f *Framer) tooLarge() (string, error) {
	f.buff = f.buff[:f.maxHeaderSize]
	return f.interrupt(errHeadersTooLarge)
}

func (f *Framer) interrupt(err error) (string, error) {
	f.err = err

	if f.strict {
		return "", fmt.Errorf("%w: %s", status.ErrMalformedRequest, err)
	}

	return uf.B2S(f.buff), nil
}

// Body reads exactly length bytes, regardless of how they are split by the transport.
// If the headers section was interrupted, no body is read at all. The premature end of
// the stream is handled the same way as in Headers.
func (f *Framer) Body(length uint64) ([]byte, error) {
	body := make([]byte, 0, min(length, bodyPrealloc))

	if f.err != nil {
		return body, nil
	}

	for uint64(len(body)) < length {
		data, err := f.client.Read()

		if rest := length - uint64(len(body)); uint64(len(data)) > rest {
			f.client.Pushback(data[rest:])
			data = data[:rest]
		}

		body = append(body, data...)

		if err != nil && uint64(len(body)) < length {
			f.err = err

			if f.strict {
				return nil, fmt.Errorf(
					"%w: body: got %d out of %d bytes: %s",
					status.ErrMalformedRequest, len(body), length, err,
				)
			}

			return body, nil
		}
	}

	return body, nil
}

// Err returns the reason the stream ended before the request was completely received.
// It's nil if the request was framed properly. io.EOF is reported as
// io.ErrUnexpectedEOF.
func (f *Framer) Err() error {
	if errors.Is(f.err, io.EOF) {
		return io.ErrUnexpectedEOF
	}

	return f.err
}
