// Package handlers contains the built-in routes of the server.
package handlers

import (
	"errors"

	"github.com/indigo-web/minihttp/blob"
	"github.com/indigo-web/minihttp/http"
	"github.com/indigo-web/minihttp/http/headers"
	"github.com/indigo-web/minihttp/http/method"
	"github.com/indigo-web/minihttp/http/mime"
	"github.com/indigo-web/minihttp/http/status"
	"github.com/indigo-web/minihttp/internal/logging"
	"github.com/indigo-web/minihttp/router"
)

const (
	EchoPrefix       = "/echo/"
	FilesPrefix      = "/files/"
	UserAgentSegment = "user-agent"
)

// Routes returns the routing table of the server. Rules are evaluated in the following
// order: the root, /echo/, /files/ and /user-agent. Everything else is 404.
func Routes(store blob.Store, dir string, log logging.Logger) *router.Table {
	return router.New(NotFound{}).
		Route(router.Exact("/"), Ping{}).
		Route(router.Prefix(EchoPrefix), NewEcho(EchoPrefix)).
		Route(router.Prefix(FilesPrefix), NewFiles(FilesPrefix, store, dir, log)).
		Route(router.Segment(UserAgentSegment), UserAgent{})
}

// Ping responds 200 OK without headers and body.
type Ping struct{}

func (Ping) Handle(*http.Request) *http.Response {
	return http.NewResponse()
}

// NotFound responds 404 Not Found without headers and body.
type NotFound struct{}

func (NotFound) Handle(*http.Request) *http.Response {
	return http.NewResponse().Code(status.NotFound)
}

// Echo responds with the rest of the path after the prefix. If the client accepts gzip,
// the Content-Encoding header is set, however the body is sent as is.
type Echo struct {
	prefix router.Pattern
}

func NewEcho(prefix string) Echo {
	return Echo{prefix: router.Prefix(prefix)}
}

func (e Echo) Handle(request *http.Request) *http.Response {
	response := http.NewResponse().ContentType(mime.Plain)
	if encoding, ok := request.Headers.ContentEncoding.Value(); ok && encoding == "gzip" {
		response.Header(headers.ContentEncoding, encoding)
	}

	return response.
		String(e.prefix.Remainder(request.Path)).
		ContentLength()
}

// UserAgent reflects the User-Agent header value. A missing header results in an
// empty body.
type UserAgent struct{}

func (UserAgent) Handle(request *http.Request) *http.Response {
	return http.NewResponse().
		ContentType(mime.Plain).
		String(request.Headers.UserAgent.Or("")).
		ContentLength()
}

// Files downloads (GET) and uploads (POST) blobs. The key is the directory concatenated
// with the rest of the path after the prefix. Any failure results in 404.
type Files struct {
	prefix router.Pattern
	store  blob.Store
	dir    string
	log    logging.Logger
}

func NewFiles(prefix string, store blob.Store, dir string, log logging.Logger) Files {
	return Files{
		prefix: router.Prefix(prefix),
		store:  store,
		dir:    dir,
		log:    log,
	}
}

// Key returns the blob key the request path is mapped onto.
func (f Files) Key(path string) string {
	return f.dir + f.prefix.Remainder(path)
}

func (f Files) Handle(request *http.Request) *http.Response {
	switch request.Method {
	case method.GET:
		return f.download(f.Key(request.Path))
	case method.POST:
		return f.upload(f.Key(request.Path), request.Body())
	default:
		return NotFound{}.Handle(request)
	}
}

func (f Files) download(key string) *http.Response {
	data, err := f.store.Read(key)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			f.log.Debug("files: read %s: %s", key, err)
		} else {
			f.log.Warn("files: read %s: %s", key, err)
		}

		return http.NewResponse().Code(status.NotFound)
	}

	return http.NewResponse().
		ContentType(mime.OctetStream).
		Bytes(data).
		ContentLength()
}

func (f Files) upload(key string, data []byte) *http.Response {
	if err := f.store.Write(key, data); err != nil {
		f.log.Debug("files: write %s: %s", key, err)
		return http.NewResponse().Code(status.NotFound)
	}

	return http.NewResponse().Code(status.Created)
}
