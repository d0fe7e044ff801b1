// Package minihttp is a minimal HTTP/1.1 server serving a fixed set of routes: a ping,
// an echo, a file storage and a user agent reflection. Every connection serves exactly
// one request.
package minihttp

import (
	"context"
	"errors"
	"fmt"
	"net"
	stdhttp "net/http"
	"time"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/minihttp/blob"
	"github.com/indigo-web/minihttp/config"
	"github.com/indigo-web/minihttp/handlers"
	"github.com/indigo-web/minihttp/http"
	"github.com/indigo-web/minihttp/http/status"
	"github.com/indigo-web/minihttp/internal/logging"
	"github.com/indigo-web/minihttp/internal/metrics"
	"github.com/indigo-web/minihttp/internal/protocol/http1"
	"github.com/indigo-web/minihttp/router"
	"github.com/indigo-web/minihttp/transport"
)

const (
	// all the built-in responses fit in, except big files
	respBuffSize = 1024
	connIDLength = 8
	// metricsShutdownTimeout limits how long a scrape in progress may delay the stop
	metricsShutdownTimeout = 5 * time.Second
)

// App is the server: it accepts connections and serves exactly one request on each
// of them.
type App struct {
	cfg        *config.Config
	log        logging.Logger
	store      blob.Store
	routes     *router.Table
	tcp        *transport.TCP
	metrics    *metrics.Metrics
	metricsSrv *stdhttp.Server
	onStart    func()
	onStop     func()
}

// New returns a new App instance. The config must not be modified afterward.
func New(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	app := &App{
		cfg: cfg,
		log: log,
		tcp: transport.NewTCP(),
	}

	switch cfg.Files.Store {
	case config.StoreMemory:
		app.store = blob.NewMemory()
	default:
		app.store = blob.FS{}
	}

	if len(cfg.Metrics.Addr) > 0 {
		app.metrics = metrics.New()
	}

	return app, nil
}

// Logger replaces the default console logger.
func (a *App) Logger(log logging.Logger) *App {
	a.log = log
	return a
}

// Store replaces the blob store chosen by the config.
func (a *App) Store(store blob.Store) *App {
	a.store = store
	return a
}

// NotifyOnStart calls the callback as soon as the listener is bound. However, it
// isn't strongly guaranteed that new connections are accepted immediately.
func (a *App) NotifyOnStart(cb func()) *App {
	a.onStart = cb
	return a
}

// NotifyOnStop calls the callback once the accept loop exited and every connection
// is processed.
func (a *App) NotifyOnStop(cb func()) *App {
	a.onStop = cb
	return a
}

// Addr returns the address the server is bound to. It's valid only after the start.
func (a *App) Addr() net.Addr {
	return a.tcp.Addr()
}

// Serve binds the listener and serves connections until Stop is called. Connections
// already accepted by then are processed till the end.
func (a *App) Serve() error {
	a.routes = handlers.Routes(a.store, a.cfg.Files.Directory, a.log)

	if err := a.tcp.Bind(a.cfg.NET.Addr); err != nil {
		return fmt.Errorf("minihttp: bind %s: %w", a.cfg.NET.Addr, err)
	}

	if err := a.serveMetrics(); err != nil {
		a.tcp.Close()
		return err
	}

	a.log.Info("config: %s", a.cfg)
	a.log.Info("listening on %s", a.tcp.Addr())
	callIfNotNil(a.onStart)

	err := a.tcp.Listen(a.cfg.NET, a.serveConn)
	a.tcp.Close()
	a.tcp.Wait()
	a.stopMetrics()
	a.log.Info("stopped")
	callIfNotNil(a.onStop)

	return err
}

// Stop stops accepting new connections. The call isn't blocking: the accept loop exits
// within the configured interrupt period.
func (a *App) Stop() {
	a.tcp.Stop()
}

func (a *App) serveConn(conn net.Conn) {
	start := time.Now()
	id := uniuri.NewLen(connIDLength)
	client := transport.NewClient(conn, a.cfg.NET.ReadTimeout, make([]byte, a.cfg.NET.ReadBufferSize))
	suit := http1.New(a.cfg.HTTP, a.routes, client, make([]byte, 0, respBuffSize))

	request, response, err := suit.ServeOnce()
	switch {
	case errors.Is(err, status.ErrMalformedRequest):
		a.log.Warn("%s: %s: %s", id, client.Remote(), err)
		a.countConn(metrics.OutcomeMalformed)
		return
	case err != nil:
		a.log.Error("%s: %s: write response: %s", id, client.Remote(), err)
		a.countConn(metrics.OutcomeWriteFailed)
	case suit.Err() != nil:
		a.log.Debug("%s: %s: stream ended prematurely: %s", id, client.Remote(), suit.Err())
		a.countConn(metrics.OutcomeTruncated)
	default:
		a.countConn(metrics.OutcomeServed)
	}

	code := response.Reveal().Code
	cost := time.Since(start)
	a.log.Debug(
		"%s: %s: %s %s -> %d (%s)",
		id, client.Remote(), request.Method, request.Path, code, cost,
	)
	a.countRequest(request, code, cost)
}

func (a *App) countConn(outcome string) {
	if a.metrics != nil {
		a.metrics.Connection(outcome)
	}
}

func (a *App) countRequest(request *http.Request, code status.Code, cost time.Duration) {
	if a.metrics == nil {
		return
	}

	route := "fallback"
	if rule, found := a.routes.Match(request.Path); found {
		route = rule.Pattern.String()
	}

	a.metrics.Request(uint16(code), request.Method.String(), route, cost)
}

func (a *App) serveMetrics() error {
	if a.metrics == nil {
		return nil
	}

	sock, err := net.Listen("tcp", a.cfg.Metrics.Addr)
	if err != nil {
		return fmt.Errorf("minihttp: bind metrics %s: %w", a.cfg.Metrics.Addr, err)
	}

	mux := stdhttp.NewServeMux()
	mux.Handle("/metrics", a.metrics.Handler())
	a.metricsSrv = &stdhttp.Server{Handler: mux}

	go func() {
		if err := a.metricsSrv.Serve(sock); !errors.Is(err, stdhttp.ErrServerClosed) {
			a.log.Error("metrics server: %s", err)
		}
	}()

	a.log.Info("metrics are exposed on %s/metrics", sock.Addr())

	return nil
}

func (a *App) stopMetrics() {
	if a.metricsSrv == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
	defer cancel()

	if err := a.metricsSrv.Shutdown(ctx); err != nil {
		a.log.Warn("metrics server shutdown: %s", err)
	}
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
