package http1

import (
	"github.com/indigo-web/minihttp/config"
	"github.com/indigo-web/minihttp/http"
	"github.com/indigo-web/minihttp/router"
	"github.com/indigo-web/minihttp/transport"
)

// Suit serves a single request over a single connection: it reads and frames the
// request, decodes it, routes it and writes the response back.
type Suit struct {
	*Framer
	*Serializer
	router router.Router
	client transport.Client
	scan   HeaderScan
}

func New(cfg config.HTTP, r router.Router, client transport.Client, respBuff []byte) *Suit {
	scan := FullScan
	if cfg.LegacyHeaderScan {
		scan = StopAtUnknown
	}

	return &Suit{
		Framer:     NewFramer(client, cfg.MaxHeaderSize, cfg.StrictFraming),
		Serializer: NewSerializer(respBuff),
		router:     r,
		client:     client,
		scan:       scan,
	}
}

// ReadRequest frames and decodes the request, the body included.
func (s *Suit) ReadRequest() (*http.Request, error) {
	text, err := s.Headers()
	if err != nil {
		return nil, err
	}

	request := Decode(text, s.scan)

	if length, ok := request.Headers.ContentLength.Value(); ok {
		body, err := s.Body(length)
		if err != nil {
			return nil, err
		}

		request.Headers.RequestBody.Set(body)
	}

	return request, nil
}

// ServeOnce processes exactly one request. The request and the response are returned
// for the caller to log them; either of them may be nil if the error occurred before
// they were produced.
func (s *Suit) ServeOnce() (*http.Request, *http.Response, error) {
	request, err := s.ReadRequest()
	if err != nil {
		return nil, nil, err
	}

	response := s.router.OnRequest(request)
	if response == nil {
		response = http.NewResponse()
	}

	return request, response, s.Write(response, s.client)
}
