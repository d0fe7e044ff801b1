package transport

import (
	"errors"
	"net"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/indigo-web/minihttp/config"
)

type listener interface {
	net.Listener
	SetDeadline(t time.Time) error
}

// TCP accepts connections and hands each one to its own goroutine. Connections are
// closed as soon as the callback returns.
type TCP struct {
	l    listener
	wg   *sync.WaitGroup
	stop *atomic.Bool
}

func NewTCP() *TCP {
	return &TCP{
		wg:   new(sync.WaitGroup),
		stop: new(atomic.Bool),
	}
}

func (t *TCP) Bind(addr string) error {
	tcpaddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return err
	}

	t.l, err = net.ListenTCP("tcp", tcpaddr)
	return err
}

// Addr returns the address the transport is bound to. It's useful when binding to
// the port 0.
func (t *TCP) Addr() net.Addr {
	return t.l.Addr()
}

// Listen runs the accept loop until Stop is called or the listener fails.
func (t *TCP) Listen(cfg config.NET, cb func(conn net.Conn)) error {
	for !t.stop.Load() {
		err := t.l.SetDeadline(time.Now().Add(cfg.AcceptLoopInterruptPeriod))
		if err != nil {
			return err
		}

		conn, err := t.l.Accept()
		if err != nil {
			if errors.Is(err, os.ErrDeadlineExceeded) {
				continue
			}

			return err
		}

		t.wg.Add(1)
		go func(conn net.Conn) {
			defer t.wg.Done()
			cb(conn)
			_ = conn.Close()
		}(conn)
	}

	return nil
}

// Stop makes the accept loop exit at its next iteration. Already accepted
// connections are not affected.
func (t *TCP) Stop() {
	t.stop.Store(true)
}

func (t *TCP) Close() {
	_ = t.l.Close()
}

// Wait blocks until every accepted connection is processed.
func (t *TCP) Wait() {
	t.wg.Wait()
}
